// Copyright 2024 Redpanda Data, Inc.
//
// Use of this software is governed by the Business Source License
// included in the file licenses/BSL.md
//
// As of the Change Date specified in that file, in accordance with
// the Business Source License, use of this software will be governed
// by the Apache License, Version 2.0

package utils

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

func ReadFileLines(fs afero.Fs, filePath string) ([]string, error) {
	file, err := fs.Open(filePath)
	var lines []string
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadEnsureSingleLine returns the only line of a file, as sysfs attributes
// are written, with surrounding whitespace trimmed.
func ReadEnsureSingleLine(fs afero.Fs, path string) (string, error) {
	lines, err := ReadFileLines(fs, path)
	if err != nil {
		return "", err
	}
	if len(lines) == 0 {
		return "", fmt.Errorf("%s is empty", path)
	}
	if len(lines) > 1 {
		return "", fmt.Errorf("%s contains multiple lines", path)
	}
	return strings.TrimSpace(lines[0]), nil
}
