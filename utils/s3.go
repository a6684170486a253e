package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"mime"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

var s3Client *s3.Client

func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// decodeDataURI splits "data:<mime>;base64,<data>" into content type and bytes.
func decodeDataURI(dataURI string) (string, []byte, error) {
	parts := strings.Split(dataURI, ",")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid base64 data URI")
	}
	mediaType := strings.SplitN(parts[0], ":", 2)
	if len(mediaType) != 2 {
		return "", nil, fmt.Errorf("invalid data URI header")
	}
	contentType := strings.SplitN(mediaType[1], ";", 2)[0]

	raw, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode payload: %v", err)
	}
	return contentType, raw, nil
}

func putObject(key, contentType string, data []byte) (string, error) {
	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %v", err)
	}

	cfURL := os.Getenv("CLOUDFRONT_URL")
	return fmt.Sprintf("%s/%s", cfURL, key), nil
}

// UploadBase64ImageToS3 stores a data-URI image under profile-pictures/ and
// returns its public URL.
func UploadBase64ImageToS3(base64Data, filenamePrefix string) (string, error) {
	contentType, data, err := decodeDataURI(base64Data)
	if err != nil {
		return "", err
	}

	exts, _ := mime.ExtensionsByType(contentType)
	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	default:
		if len(exts) > 0 {
			ext = exts[0]
		} else if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
			ext = "." + parts[1]
		}
	}

	key := fmt.Sprintf("profile-pictures/%s-%d%s", filenamePrefix, time.Now().UnixNano(), ext)
	return putObject(key, contentType, data)
}

// UploadBase64AudioToS3 stores a data-URI voice note under audio-messages/.
func UploadBase64AudioToS3(base64Data string, userID uint) (string, error) {
	contentType, data, err := decodeDataURI(base64Data)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(contentType, "audio/") {
		return "", fmt.Errorf("expected audio content, got %s", contentType)
	}

	key := fmt.Sprintf("audio-messages/%d_%d.m4a", userID, time.Now().UnixNano())
	return putObject(key, contentType, data)
}
