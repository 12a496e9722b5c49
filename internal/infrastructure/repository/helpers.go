package repository

import "strconv"

// placeholder は位置パラメータ番号を文字列化します
func placeholder(n int) string {
	return strconv.Itoa(n)
}
