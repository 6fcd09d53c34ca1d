package entity

// Upload is the result of storing an image in the public bucket.
type Upload struct {
	SecureURL string `json:"secure_url"` // Publicly addressable URL of the stored image.
	PublicID  string `json:"public_id"`  // Bucket key, usable for later deletion.
}
