package config

import (
	"os"
)

// CloudinaryConfig identifies the Cloudinary account used to build
// transformation URLs. Only the cloud name participates in delivery URLs;
// the key/secret pair is kept for signed operations.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func GetCloudinaryConfig() *CloudinaryConfig {
	return &CloudinaryConfig{
		CloudName: os.Getenv("CLOUDINARY_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
}
