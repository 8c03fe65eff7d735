package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/YaCodeDev/GoYaCliUtils/yaerrors"
)

// loadDotEnv exports the KEY=VALUE lines of DotEnvFile into the process
// environment. Variables that are already set keep their value. A missing
// file is not an error.
//
// Blank lines and lines starting with '#' are skipped, an "export " prefix is
// allowed and a value wrapped in matching single or double quotes is unquoted.
func loadDotEnv() yaerrors.Error {
	file, err := os.Open(DotEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return yaerrors.FromError(http.StatusInternalServerError, err, "open "+DotEnvFile)
	}

	defer file.Close()

	scanner := bufio.NewScanner(file)

	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = strings.TrimPrefix(line, "export ")

		parts := strings.SplitN(line, "=", DotEnvKVParts)
		key := strings.TrimSpace(parts[0])

		if len(parts) != DotEnvKVParts || key == "" {
			return yaerrors.FromError(
				http.StatusInternalServerError,
				ErrInvalidDotEnvFileFormat,
				fmt.Sprintf("%s line %d", DotEnvFile, lineNumber),
			)
		}

		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, unquote(strings.TrimSpace(parts[1]))); err != nil {
			return yaerrors.FromError(
				http.StatusInternalServerError,
				err,
				fmt.Sprintf("%s line %d: set %s", DotEnvFile, lineNumber, key),
			)
		}
	}

	if err := scanner.Err(); err != nil {
		return yaerrors.FromError(http.StatusInternalServerError, err, "read "+DotEnvFile)
	}

	return nil
}

func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}

	return value
}
