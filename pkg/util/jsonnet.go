package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-jsonnet"
	"github.com/joho/godotenv"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnmarshalConfigurationFromFile reads a Jsonnet file, evaluates it and
// unmarshals the output into a JSON tagged structure. Prior to
// evaluation, variables declared in a file named .env in the same
// directory are added to the environment.
func UnmarshalConfigurationFromFile(path string, configuration any) error {
	// Read configuration file from disk or from stdin.
	var jsonnetInput []byte
	var err error
	if path == "-" {
		jsonnetInput, err = io.ReadAll(os.Stdin)
	} else {
		if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
			return err
		}
		jsonnetInput, err = os.ReadFile(path)
	}
	if err != nil {
		return StatusWrapf(err, "Failed to read file contents")
	}
	return UnmarshalConfigurationFromJsonnet(path, jsonnetInput, os.Environ(), configuration)
}

// UnmarshalConfigurationFromJsonnet evaluates a Jsonnet snippet and
// unmarshals the output into a JSON tagged structure. Environment
// variables in KEY=value form are available through std.extVar().
func UnmarshalConfigurationFromJsonnet(filename string, jsonnetInput []byte, environment []string, configuration any) error {
	vm := jsonnet.MakeVM()
	for _, env := range environment {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			return status.Errorf(codes.InvalidArgument, "Invalid environment variable: %#v", env)
		}
		vm.ExtVar(key, value)
	}

	jsonnetOutput, err := vm.EvaluateAnonymousSnippet(filename, string(jsonnetInput))
	if err != nil {
		return StatusWrapWithCode(err, codes.InvalidArgument, "Failed to evaluate configuration")
	}

	decoder := json.NewDecoder(bytes.NewBufferString(jsonnetOutput))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(configuration); err != nil {
		return StatusWrapWithCode(err, codes.InvalidArgument, "Failed to unmarshal configuration")
	}
	return nil
}

func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return StatusWrapf(err, "Failed to load environment file %#v", path)
	}
	return nil
}
