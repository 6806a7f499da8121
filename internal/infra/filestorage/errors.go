package filestorage

import "errors"

var (
	// ErrUpload возвращается при ошибке загрузки файла в хранилище
	ErrUpload = errors.New("filestorage: failed to upload object")

	// ErrDelete возвращается при ошибке удаления файла из хранилища
	ErrDelete = errors.New("filestorage: failed to delete object")
)
