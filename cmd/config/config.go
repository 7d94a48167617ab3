package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Format is the encoding of a config file
type Format int

// formats
const (
	TOML Format = iota
	YAML
)

// errors
var (
	ErrUnsupportedField = errors.New("unsupported config field")
)

// FormatOf returns the format of the path by the extension, toml is the default
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// LoadFile parse the config from the file of the path
func LoadFile(path string, v interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	return LoadReader(file, FormatOf(path), v)
}

// LoadString parse the config from the toml string
func LoadString(data string, v interface{}) error {
	return LoadReader(bytes.NewReader([]byte(data)), TOML, v)
}

// LoadReader parse the config from the reader
func LoadReader(r io.Reader, f Format, v interface{}) error {
	switch f {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(v); err != nil && err != io.EOF {
			return errors.WithStack(err)
		}
	default:
		if err := toml.NewDecoder(r).Decode(v); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// LoadDotEnv loads the .env files into the process environment, missing files are ignored.
// Variables already set in the environment are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

// ApplyEnv overrides the scalar fields of the struct pointed by v with PREFIX_NAME variables.
// NAME is the upper cased toml tag of the field or the field name.
func ApplyEnv(prefix string, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return errors.Errorf("config must be a struct pointer, got %T", v)
	}
	rv = rv.Elem()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := field.Name
		if tag := strings.Split(field.Tag.Get("toml"), ",")[0]; tag != "" && tag != "-" {
			name = tag
		}
		str, has := os.LookupEnv(prefix + "_" + strings.ToUpper(name))
		if !has {
			continue
		}
		if err := setValue(rv.Field(i), str); err != nil {
			return errors.Wrap(err, field.Name)
		}
	}
	return nil
}

func setValue(fv reflect.Value, str string) error {
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(str)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return errors.WithStack(err)
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 10, fv.Type().Bits())
		if err != nil {
			return errors.WithStack(err)
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 10, fv.Type().Bits())
		if err != nil {
			return errors.WithStack(err)
		}
		fv.SetUint(n)
	default:
		return errors.WithStack(ErrUnsupportedField)
	}
	return nil
}
