package services

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"printlist-backend/config"

	"github.com/aliyun/alibaba-cloud-sdk-go/services/sts"
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// Model files accepted for listing submissions.
var allowedModelExtensions = map[string]bool{
	".stl": true,
	".obj": true,
	".3mf": true,
}

var ErrUnsupportedModelFile = errors.New("only .stl, .obj and .3mf files are supported")

type STSCredentials struct {
	AccessKeyId     string `json:"accessKeyId"`
	AccessKeySecret string `json:"accessKeySecret"`
	SecurityToken   string `json:"securityToken"`
	Expiration      string `json:"expiration"`
	Region          string `json:"region"`
	Bucket          string `json:"bucket"`
}

// GetOSSTSToken issues short-lived STS credentials so the browser can
// upload large STL files to the bucket directly.
func GetOSSTSToken() (*STSCredentials, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// STS wants the bare region id, without the "oss-" prefix.
	stsRegion := strings.TrimPrefix(cfg.OSSRegion, "oss-")

	client, err := sts.NewClientWithAccessKey(stsRegion, cfg.OSSAccessKeyID, cfg.OSSAccessKeySecret)
	if err != nil {
		return nil, err
	}

	request := sts.CreateAssumeRoleRequest()
	request.Scheme = "https"
	request.RoleArn = cfg.OSSRoleArn
	request.RoleSessionName = "printlist-stl-upload"
	request.DurationSeconds = "3600"

	response, err := client.AssumeRole(request)
	if err != nil {
		return nil, err
	}

	return &STSCredentials{
		AccessKeyId:     response.Credentials.AccessKeyId,
		AccessKeySecret: response.Credentials.AccessKeySecret,
		SecurityToken:   response.Credentials.SecurityToken,
		Expiration:      response.Credentials.Expiration,
		Region:          cfg.OSSRegion,
		Bucket:          cfg.OSSBucketName,
	}, nil
}

// STLObjectKey builds a collision-free object key for an uploaded
// model file, keyed by upload month: stl/2026/08/<uuid>.stl
func STLObjectKey(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedModelExtensions[ext] {
		return "", ErrUnsupportedModelFile
	}
	now := time.Now()
	return fmt.Sprintf("stl/%d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext), nil
}

// UploadSTL uploads a local model file to the bucket under an STS
// session and returns its public URL.
func UploadSTL(localPath string) (string, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}

	objectKey, err := STLObjectKey(localPath)
	if err != nil {
		return "", err
	}

	stsCreds, err := GetOSSTSToken()
	if err != nil {
		return "", fmt.Errorf("failed to get STS token: %w", err)
	}

	client, err := oss.New(
		cfg.OSSEndpoint,
		stsCreds.AccessKeyId,
		stsCreds.AccessKeySecret,
		oss.SecurityToken(stsCreds.SecurityToken),
		oss.Timeout(60, 120),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create OSS client: %w", err)
	}

	bucket, err := client.Bucket(cfg.OSSBucketName)
	if err != nil {
		return "", fmt.Errorf("failed to get bucket: %w", err)
	}

	if err := bucket.PutObjectFromFile(objectKey, localPath); err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}

	return PublicObjectURL(cfg, objectKey), nil
}

// PublicObjectURL builds the virtual-hosted bucket URL for a key.
func PublicObjectURL(cfg *config.Config, objectKey string) string {
	endpoint := cfg.OSSEndpoint
	scheme := "https"
	if idx := strings.Index(endpoint, "://"); idx != -1 {
		scheme = endpoint[:idx]
		endpoint = endpoint[idx+3:]
	}
	return fmt.Sprintf("%s://%s.%s/%s", scheme, cfg.OSSBucketName, endpoint, objectKey)
}
