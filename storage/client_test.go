package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shale-dev/shale/filesystem"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "pages",
			Region:    "us-east-1",
		}

		client, err := NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "pages",
		}

		client, err := NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Bucket:    "pages",
			Region:    "us-east-1",
		}

		client, err := NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("ServesAsFilesystem", func(t *testing.T) {
		client, err := NewClient(Config{Endpoint: "localhost:9000", Bucket: "pages"})
		require.NoError(t, err)

		var fs filesystem.Filesystem = client
		assert.NotNil(t, fs)
	})
}

func TestKey(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/index.html", "index.html"},
		{"/docs/guide.html", "docs/guide.html"},
		{"site/index.html", "site/index.html"},
		{"/", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, key(tt.path))
		})
	}
}
