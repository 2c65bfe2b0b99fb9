package io

import (
	"bufio"
	"os"
	"path/filepath"
)

// GetLines reads path relative to the working directory unless it is
// absolute, and returns its lines without terminators.
func GetLines(path string) ([]string, error) {
	fp, err := os.Open(resolve(path))
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var lines []string
	scanner := bufio.NewScanner(fp)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func IsFile(path string) bool {
	info, err := os.Stat(resolve(path))
	if err != nil || info.IsDir() {
		return false
	}
	return true
}

func IsDir(path string) bool {
	info, err := os.Stat(resolve(path))
	if err != nil || !info.IsDir() {
		return false
	}
	return true
}

func resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	pwd, err := os.Getwd()
	if err != nil {
		return path
	}
	return filepath.Join(pwd, path)
}
