package errors

import "fmt"

// Common wrapping patterns used throughout the scanning pipeline.

// WrapParseError wraps an error raised while parsing an annotation
func WrapParseError(item string, cause error) *BaseError {
	return Wrap(SyntaxErrorCode, fmt.Sprintf("failed to parse %s", item), cause)
}

// WrapSchemaError wraps an error raised while registering or looking up a
// descriptor schema
func WrapSchemaError(kind string, cause error) *BaseError {
	return Wrap(SchemaErrorCode, fmt.Sprintf("invalid schema for %s", kind), cause).
		WithContext("annotation_kind", kind)
}

// WrapDiscoveryError wraps an error raised while extracting registrations
// from a source file
func WrapDiscoveryError(file string, cause error) *BaseError {
	return Wrap(DiscoveryErrorCode, fmt.Sprintf("failed to discover annotations in %s", file), cause).
		WithContext("file", file)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	return Wrap(FileSystemErrorCode, fmt.Sprintf("failed to %s '%s'", operation, path), cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// ValidationError creates a validation error for a single annotation
// parameter
func ValidationError(parameter, reason string) *BaseError {
	return Newf(ValidationErrorCode, "invalid parameter '%s': %s", parameter, reason).
		WithContext("parameter", parameter)
}

// RegistrationError creates an error for a malformed registration record
func RegistrationError(structName, reason string) *BaseError {
	return Newf(RegistrationErrorCode, "invalid registration for '%s': %s", structName, reason).
		WithContext("struct", structName)
}
