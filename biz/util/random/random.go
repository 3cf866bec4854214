package random

import "github.com/bytedance/gopkg/lang/fastrand"

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func RandStr(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[fastrand.Intn(len(alphabet))]
	}
	return string(b)
}
