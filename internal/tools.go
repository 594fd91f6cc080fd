package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrTooManyTries is returned when a validated prompt exhausts its retries.
var ErrTooManyTries = errors.New("too many tries")

type promptValidator func(string) (bool, string)

type promptConfig struct {
	tries     int
	validator promptValidator
}

type promptOption func(*promptConfig)

func WithValidator(v promptValidator) promptOption {
	return func(cfg *promptConfig) {
		cfg.validator = v
	}
}

func WithMaxTries(i int) promptOption {
	return func(cfg *promptConfig) {
		cfg.tries = i
	}
}

type lineReader interface {
	ReadString(delim byte) (string, error)
}

// Terminal joins an input and an output stream into the io.ReadWriter the
// prompt helpers expect. Its reader is buffered once so consecutive prompts
// don't drop typed-ahead input.
type Terminal struct {
	*bufio.Reader
	io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{Reader: bufio.NewReader(in), Writer: out}
}

func Prompt(rw io.ReadWriter, prompt string, opts ...promptOption) (string, error) {
	config := &promptConfig{}
	for _, opt := range opts {
		opt(config)
	}

	br, ok := rw.(lineReader)
	if !ok {
		br = bufio.NewReader(rw)
	}

	tries := 0
	for {
		_, err := io.WriteString(rw, prompt)
		if err != nil {
			return "", err
		}

		line, err := br.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}
		input := strings.TrimRight(line, "\r\n")

		if config.validator != nil {
			ok, msg := config.validator(input)
			if !ok {
				_, _ = io.WriteString(rw, msg)

				tries++
				if config.tries > 0 && config.tries == tries {
					return "", fmt.Errorf("%w: %d", ErrTooManyTries, tries)
				}

				continue
			}
		}

		return input, nil
	}
}

func PromptYN(rw io.ReadWriter, prompt string) (bool, error) {
	str, err := Prompt(rw, prompt, WithValidator(
		func(str string) (bool, string) {
			switch strings.ToLower(strings.TrimSpace(str)) {
			case "y", "yes", "n", "no":
				return true, ""
			default:
				return false, "enter 'yes' or 'no'\n"
			}
		},
	), WithMaxTries(3))
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(str)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
