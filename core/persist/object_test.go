package persist

import (
	"context"
	"io"
	"strings"
	"testing"

	"inventory-checker/core/ledger"
	"inventory-checker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestObjectStore_Load(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewObjectStore(mockClient, "inventory")

	body := `[{"id":"id-1","barcode":"A1","quantity":5}]`
	mockClient.On("GetObject", mock.Anything, "inventory", objectName, mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)

	entries, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []ledger.Entry{{ID: "id-1", Barcode: "A1", Quantity: 5}}, entries)
	mockClient.AssertExpectations(t)
}

func TestObjectStore_LoadMissingObject(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewObjectStore(mockClient, "inventory")

	mockClient.On("GetObject", mock.Anything, "inventory", objectName, mock.Anything).
		Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

	entries, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, entries)
}

func TestObjectStore_SaveCreatesBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewObjectStore(mockClient, "inventory")

	mockClient.On("BucketExists", mock.Anything, "inventory").Return(false, nil)
	mockClient.On("MakeBucket", mock.Anything, "inventory", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "inventory", objectName, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := store.Save(context.Background(), []ledger.Entry{{ID: "id-1", Barcode: "A1", Quantity: 5}})
	assert.NoError(t, err)
	mockClient.AssertExpectations(t)
}

func TestObjectStore_SaveExistingBucket(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewObjectStore(mockClient, "inventory")

	mockClient.On("BucketExists", mock.Anything, "inventory").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "inventory", objectName, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	err := store.Save(context.Background(), nil)
	assert.NoError(t, err)
	mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func TestObjectStore_Erase(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewObjectStore(mockClient, "inventory")

	mockClient.On("RemoveObject", mock.Anything, "inventory", objectName, mock.Anything).Return(nil)
	assert.NoError(t, store.Erase(context.Background()))
}

func TestObjectStore_EraseMissingObject(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewObjectStore(mockClient, "inventory")

	mockClient.On("RemoveObject", mock.Anything, "inventory", objectName, mock.Anything).
		Return(minio.ErrorResponse{Code: "NoSuchKey"})
	assert.NoError(t, store.Erase(context.Background()))
}
