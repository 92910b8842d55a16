package dto

import "time"

type ImageUploadResponse struct {
	ID       string `json:"id" example:"2cdc28f0-017a-49c4-9ed7-87056c83901"`
	URL      string `json:"url" example:"https://imagedelivery.net/acct/2cdc28f0/public"`
	Filename string `json:"filename,omitempty" example:"case-cover.png"`
	Uploaded bool   `json:"uploaded" example:"true"`
}

type DirectUploadResponse struct {
	ID        string    `json:"id" example:"2cdc28f0-017a-49c4-9ed7-87056c83901"`
	UploadURL string    `json:"upload_url" example:"https://upload.imagedelivery.net/..."`
	Expiry    time.Time `json:"expiry"`
}
