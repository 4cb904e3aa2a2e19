package project

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/epirus-io/epirus-cli/internal/config"
	"github.com/epirus-io/epirus-cli/pkg/models"
)

// Validated fields.
const (
	FieldProjectName   = "project name"
	FieldPackageName   = "package name"
	FieldAddressLength = "address length"
)

// ValidationError describes an invalid project parameter.
type ValidationError struct {
	Field   string
	Message string
	Value   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Message)
}

// Unwrap returns ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// reservedWords are the Java keywords and literals that may not be used as
// identifiers in the generated JVM project.
var reservedWords = map[string]struct{}{
	"abstract": {}, "assert": {}, "boolean": {}, "break": {}, "byte": {},
	"case": {}, "catch": {}, "char": {}, "class": {}, "const": {},
	"continue": {}, "default": {}, "do": {}, "double": {}, "else": {},
	"enum": {}, "extends": {}, "final": {}, "finally": {}, "float": {},
	"for": {}, "goto": {}, "if": {}, "implements": {}, "import": {},
	"instanceof": {}, "int": {}, "interface": {}, "long": {}, "native": {},
	"new": {}, "package": {}, "private": {}, "protected": {}, "public": {},
	"return": {}, "short": {}, "static": {}, "strictfp": {}, "super": {},
	"switch": {}, "synchronized": {}, "this": {}, "throw": {}, "throws": {},
	"transient": {}, "try": {}, "void": {}, "volatile": {}, "while": {},
	"_": {}, "true": {}, "false": {}, "null": {},
}

// Validate checks the project and package names and the address length of
// cfg. Both names must be present, the project name must be an identifier
// and the package name a dotted sequence of identifiers. The first
// violation is returned as a *ValidationError. Validate has no side effects.
func Validate(cfg models.ProjectConfiguration) error {
	name := norm.NFC.String(cfg.ProjectName)
	pkg := norm.NFC.String(cfg.PackageName)

	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: FieldProjectName, Message: "must not be empty"}
	}
	if strings.TrimSpace(pkg) == "" {
		return &ValidationError{Field: FieldPackageName, Message: "must not be empty"}
	}
	if err := ValidateProjectName(name); err != nil {
		return err
	}
	if err := ValidatePackageName(pkg); err != nil {
		return err
	}
	return ValidateAddressLength(cfg.AddressLength)
}

// ValidateAddressLength checks that n bytes is a supported address length.
func ValidateAddressLength(n int) error {
	if n < config.MinAddressLength || n > config.MaxAddressLength {
		return &ValidationError{
			Field:   FieldAddressLength,
			Message: fmt.Sprintf("must be between %d and %d bytes", config.MinAddressLength, config.MaxAddressLength),
			Value:   strconv.Itoa(n),
		}
	}
	return nil
}

// ValidateProjectName checks that name is a valid class name.
func ValidateProjectName(name string) error {
	name = norm.NFC.String(name)
	if msg := identifierProblem(name); msg != "" {
		return &ValidationError{Field: FieldProjectName, Message: msg, Value: name}
	}
	return nil
}

// ValidatePackageName checks that pkg is a dotted sequence of identifiers.
func ValidatePackageName(pkg string) error {
	pkg = norm.NFC.String(pkg)
	if pkg == "" {
		return &ValidationError{Field: FieldPackageName, Message: "must not be empty"}
	}
	for i, segment := range strings.Split(pkg, ".") {
		if segment == "" {
			return &ValidationError{
				Field:   FieldPackageName,
				Message: fmt.Sprintf("segment %d is empty", i+1),
				Value:   pkg,
			}
		}
		if msg := identifierProblem(segment); msg != "" {
			return &ValidationError{
				Field:   FieldPackageName,
				Message: fmt.Sprintf("segment %q %s", segment, msg),
				Value:   pkg,
			}
		}
	}
	return nil
}

// identifierProblem returns why s is not an identifier, or "".
func identifierProblem(s string) string {
	if s == "" {
		return "must not be empty"
	}
	if _, reserved := reservedWords[s]; reserved {
		return "is a reserved word"
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentifierStart(r) {
				return fmt.Sprintf("must start with a letter, '_' or '$', not %q", r)
			}
			continue
		}
		if !isIdentifierPart(r) {
			return fmt.Sprintf("contains invalid character %q", r)
		}
	}
	return ""
}

func isIdentifierStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == '$'
}

func isIdentifierPart(r rune) bool {
	return isIdentifierStart(r) || unicode.IsDigit(r)
}
