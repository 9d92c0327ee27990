package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryService uploads and removes the images referenced by products,
// projects and page documents. Assets live under somine/<kind>/<id>.
type CloudinaryService struct {
	cld *cloudinary.Cloudinary
}

var cloudinaryService *CloudinaryService

// InitCloudinary initializes the shared Cloudinary service.
func InitCloudinary(cloudName, apiKey, apiSecret string) error {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	cloudinaryService = &CloudinaryService{cld: cld}
	return nil
}

// GetCloudinaryService returns the shared service, nil when uploads are not
// configured.
func GetCloudinaryService() *CloudinaryService {
	return cloudinaryService
}

// UploadImage uploads a single image and returns the secure URL.
func (s *CloudinaryService) UploadImage(ctx context.Context, file multipart.File, filename string, folder string) (string, error) {
	unique := true
	overwrite := false
	uploadParams := uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "image",
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	}
	if filename != "" {
		uploadParams.PublicID = filename
	}

	result, err := s.cld.Upload.Upload(ctx, file, uploadParams)
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}

// UploadMultipleImages uploads multiple images and returns their URLs.
func (s *CloudinaryService) UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error) {
	var urls []string

	for i, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
		}
		defer file.Close()

		filename := fmt.Sprintf("%s_%d", fileHeader.Filename, i)
		url, err := s.UploadImage(ctx, file, filename, folder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, nil
}

// DeleteImage deletes an image by its public ID.
func (s *CloudinaryService) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// DeleteFolder removes every asset under folderPath and then the folder
// itself. Used for cleanup after a product or project is deleted.
func (s *CloudinaryService) DeleteFolder(ctx context.Context, folderPath string) error {
	_, err := s.cld.Admin.DeleteAssetsByPrefix(ctx, admin.DeleteAssetsByPrefixParams{
		Prefix: api.CldAPIArray{folderPath},
	})
	if err != nil {
		return fmt.Errorf("failed to delete assets in folder %s: %w", folderPath, err)
	}

	// Cloudinary usually auto-removes empty folders; ignore errors here.
	s.cld.Admin.DeleteFolder(ctx, admin.DeleteFolderParams{
		Folder: folderPath,
	})
	return nil
}

// ExtractPublicID extracts the Cloudinary public ID from a delivery URL.
// Example: https://res.cloudinary.com/demo/image/upload/v1234/somine/products/x/a.jpg
// Returns: somine/products/x/a
func ExtractPublicID(url string) string {
	if url == "" {
		return ""
	}

	uploadIndex := strings.Index(url, "/upload/")
	if uploadIndex == -1 {
		return ""
	}
	afterUpload := url[uploadIndex+8:]

	// Skip version segment if present (e.g., "v1234567890/")
	if strings.HasPrefix(afterUpload, "v") {
		versionEndIndex := strings.Index(afterUpload, "/")
		if versionEndIndex != -1 {
			afterUpload = afterUpload[versionEndIndex+1:]
		}
	}

	if lastDotIndex := strings.LastIndex(afterUpload, "."); lastDotIndex != -1 {
		afterUpload = afterUpload[:lastDotIndex]
	}

	return afterUpload
}
