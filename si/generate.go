package si

//go:generate go run ../cmd/sigen generate --target . --package github.com/syssam/siunits/si
