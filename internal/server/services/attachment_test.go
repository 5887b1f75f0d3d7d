package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soorajjain/taskBuddy-alter/internal/common"
	sc "github.com/soorajjain/taskBuddy-alter/internal/server/config"
)

func newAttachmentService() *AttachmentService {
	cfg := &sc.Config{}
	cfg.LoadDefaults()
	return NewAttachmentService(cfg)
}

func stubPresignClient(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origNewClient := newS3ClientFromConfig
	origNewPresign := newS3PresignClient
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewClient
		newS3PresignClient = origNewPresign
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return nil
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return nil
	}
}

func TestPresignUpload_Unauthenticated(t *testing.T) {
	svc := newAttachmentService()

	_, _, err := svc.PresignUpload(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestPresignUpload_ReturnsKeyAndURL(t *testing.T) {
	svc := newAttachmentService()
	stubPresignClient(t)

	origPut := presignPutObject
	t.Cleanup(func() { presignPutObject = origPut })

	var gotKey string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotKey = *in.Key
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/put/" + *in.Key}, nil
	}

	key, url, err := svc.PresignUpload(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, gotKey, key)
	assert.True(t, strings.HasPrefix(key, "attachments/"), "key %q should be date-prefixed", key)
	assert.Equal(t, "https://s3.local/put/"+key, url)
}

func TestPresignUpload_PresignErrorPropagates(t *testing.T) {
	svc := newAttachmentService()
	stubPresignClient(t)

	origPut := presignPutObject
	t.Cleanup(func() { presignPutObject = origPut })

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign failed")
	}

	_, _, err := svc.PresignUpload(context.Background(), "u1")
	assert.Error(t, err)
}

func TestPresignDownload_Unauthenticated(t *testing.T) {
	svc := newAttachmentService()

	_, err := svc.PresignDownload(context.Background(), "", "attachments/a")
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestPresignDownload_EmptyKey(t *testing.T) {
	svc := newAttachmentService()

	_, err := svc.PresignDownload(context.Background(), "u1", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestPresignDownload_ReturnsURL(t *testing.T) {
	svc := newAttachmentService()
	stubPresignClient(t)

	origGet := presignGetObject
	t.Cleanup(func() { presignGetObject = origGet })

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://s3.local/get/" + *in.Key}, nil
	}

	url, err := svc.PresignDownload(context.Background(), "u1", "attachments/2025/11/4/abc")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/get/attachments/2025/11/4/abc", url)
}
