package profile

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// filenameWithSuffix returns fpath with its iteration number replaced
// by iter: out.2.yaml is the third candidate for out.yaml.
func filenameWithSuffix(fpath string, iter uint) string {
	ext := filepath.Ext(fpath)
	res := strings.TrimSuffix(fpath, ext)
	if curIter, err := strconv.Atoi(strings.TrimPrefix(filepath.Ext(res), ".")); err == nil && curIter != 0 {
		res = strings.TrimSuffix(res, filepath.Ext(res))
	}

	if iter == 0 {
		return res + ext
	}

	return res + "." + strconv.FormatUint(uint64(iter), 10) + ext
}

// CreateFileWithoutOverwrite creates fpath, or the first free
// out.<n>.ext variant of it. It returns the created file and its name.
func CreateFileWithoutOverwrite(fpath string) (*os.File, string, error) {
	if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
		return nil, "", err
	}
	for iter := uint(0); ; iter++ {
		toTest := filenameWithSuffix(fpath, iter)
		f, err := os.OpenFile(toTest, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, toTest, nil
		}
		if os.IsExist(err) == false {
			return nil, "", err
		}
	}
}
