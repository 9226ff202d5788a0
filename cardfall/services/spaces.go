package services

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SpacesService stores card media on a DigitalOcean Spaces bucket and
// serves it over the bucket CDN.
type SpacesService struct {
	client   *s3.Client
	bucket   string
	region   string
	CardRoot string
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, cardRoot string) (*SpacesService, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load spaces config: %w", err)
	}

	return &SpacesService{
		client:   s3.NewFromConfig(cfg),
		bucket:   bucket,
		region:   region,
		CardRoot: strings.TrimPrefix(cardRoot, "/"),
	}, nil
}

// cardKey builds the object key for a card's media file.
func (s *SpacesService) cardKey(category, cardName, ext string) string {
	name := strings.ToLower(strings.ReplaceAll(cardName, " ", "_"))
	return path.Join(s.CardRoot, category, name+ext)
}

// UploadCardMedia stores media bytes for a card and returns the public
// CDN URL. ext must include the leading dot, e.g. ".gif".
func (s *SpacesService) UploadCardMedia(ctx context.Context, category, cardName, ext, contentType string, body []byte) (string, error) {
	key := s.cardKey(category, cardName, ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
		ACL:         "public-read",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload card media: %w", err)
	}
	return fmt.Sprintf("https://%s.%s.cdn.digitaloceanspaces.com/%s", s.bucket, s.region, key), nil
}

// DeleteCardMedia removes the stored media for a card. Both the gif and
// jpg variants are attempted; at least one must succeed.
func (s *SpacesService) DeleteCardMedia(ctx context.Context, category, cardName string) error {
	var errs []string
	deleted := false

	for _, ext := range []string{".gif", ".jpg"} {
		key := s.cardKey(category, cardName, ext)
		_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: &s.bucket,
			Key:    &key,
		})
		if err == nil {
			deleted = true
		} else {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}

	if !deleted {
		return fmt.Errorf("failed to delete card media: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (s *SpacesService) GetBucket() string {
	return s.bucket
}

func (s *SpacesService) GetRegion() string {
	return s.region
}
