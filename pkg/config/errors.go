package config

import (
	"errors"
	"io/fs"
)

// isNotExist 判断错误链中是否包含文件不存在错误
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
