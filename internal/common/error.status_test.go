package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_Is(t *testing.T) {
	err := NewError(ErrCodeDatabaseQuery, "Không tìm thấy dữ liệu", StatusNotFound, nil)
	assert.True(t, errors.Is(err, ErrNotFound), "lỗi cùng code và message phải khớp errors.Is")
	assert.False(t, errors.Is(err, ErrDuplicate), "lỗi khác message không được khớp")
	assert.False(t, errors.Is(err, nil))
}

func TestError_IsSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("find business: %w", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestConvertMongoError(t *testing.T) {
	assert.Nil(t, ConvertMongoError(nil))

	// ErrNotFound giữ nguyên để caller phân biệt với lỗi hệ thống
	assert.Same(t, ErrNotFound, ConvertMongoError(ErrNotFound))

	dup := mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
	converted := ConvertMongoError(dup)
	var appErr *Error
	if assert.ErrorAs(t, converted, &appErr) {
		assert.Equal(t, StatusConflict, appErr.StatusCode)
		assert.Equal(t, ErrCodeDatabaseQuery.Code, appErr.Code.Code)
	}

	generic := ConvertMongoError(errors.New("connection reset"))
	if assert.ErrorAs(t, generic, &appErr) {
		assert.Equal(t, StatusInternalServerError, appErr.StatusCode)
	}
}
