package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDeleter struct {
	inputs []*s3.DeleteObjectInput
	err    error
}

func (f *fakeDeleter) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.inputs = append(f.inputs, params)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.DeleteObjectOutput{}, nil
}

func TestObjectKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{name: "virtual hosted", url: "https://files.s3.us-east-1.amazonaws.com/tabs/contract.pdf", want: "tabs/contract.pdf"},
		{name: "path style", url: "http://localhost:9000/files/tabs/contract.pdf", want: "tabs/contract.pdf"},
		{name: "bare key", url: "tabs/contract.pdf", want: "tabs/contract.pdf"},
		{name: "escaped", url: "https://files.s3.amazonaws.com/tabs/my%20file.pdf", want: "tabs/my file.pdf"},
		{name: "empty", url: "  ", wantErr: true},
		{name: "no key", url: "https://files.s3.amazonaws.com/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ObjectKey(tt.url, "files")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDelete(t *testing.T) {
	client := &fakeDeleter{}
	s := NewS3StorageWithClient(client, "files", zap.NewNop())

	require.NoError(t, s.Delete(context.Background(), "https://files.s3.amazonaws.com/a/b.png"))
	require.Len(t, client.inputs, 1)
	assert.Equal(t, "files", aws.ToString(client.inputs[0].Bucket))
	assert.Equal(t, "a/b.png", aws.ToString(client.inputs[0].Key))

	client.err = errors.New("access denied")
	err := s.Delete(context.Background(), "a/c.png")
	assert.ErrorIs(t, err, client.err)

	assert.Error(t, s.Delete(context.Background(), ""))
	assert.Len(t, client.inputs, 2)
}
