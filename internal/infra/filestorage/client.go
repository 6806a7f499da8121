package filestorage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/m04kA/SMC-SpaceService/internal/config"
)

// Client клиент S3-совместимого хранилища файлов
// (изображения пространств и аватары пользователей)
type Client struct {
	s3            *s3.Client
	bucket        string
	publicBaseURL string
}

// NewClient создает клиент хранилища по конфигурации
// Поддерживает MinIO и другие S3-совместимые хранилища через endpoint + path style
func NewClient(cfg config.StorageConfig) *Client {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &Client{
		s3:            client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Upload загружает объект по ключу и возвращает публичный URL
func (c *Client) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("%w: key=%s: %v", ErrUpload, key, err)
	}

	return c.PublicURL(key), nil
}

// Delete удаляет объект по ключу
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrDelete, key, err)
	}
	return nil
}

// PublicURL возвращает публичный URL объекта по ключу
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", c.publicBaseURL, strings.TrimLeft(key, "/"))
}
