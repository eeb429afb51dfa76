package xsderrors

import (
	"errors"
	"testing"
)

func TestForbiddenPathError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ForbiddenPathError{
			Path:    `/data/CommonTypes/v14/schemas`,
			Segment: "CommonTypes/v14",
		}
		want := "forbidden path: /data/CommonTypes/v14/schemas: must not contain 'CommonTypes/v14'"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ForbiddenPathError{}
		if err.Error() != "forbidden path" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrForbiddenPath", func(t *testing.T) {
		err := &ForbiddenPathError{Path: "x"}
		if !errors.Is(err, ErrForbiddenPath) {
			t.Error("ForbiddenPathError should match ErrForbiddenPath")
		}
	})

	t.Run("Is does not match schema load umbrella", func(t *testing.T) {
		err := &ForbiddenPathError{}
		if errors.Is(err, ErrSchemaLoad) {
			t.Error("ForbiddenPathError should not match ErrSchemaLoad")
		}
	})
}

func TestMissingFileError(t *testing.T) {
	t.Run("Error message with role and path", func(t *testing.T) {
		err := &MissingFileError{Path: "schemas/FSA029-Schema.xsd", Role: "primary schema"}
		want := "missing primary schema: schemas/FSA029-Schema.xsd"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &MissingFileError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("MissingFileError should wrap its cause")
		}
	})

	t.Run("Is matches ErrMissingFile and ErrSchemaLoad", func(t *testing.T) {
		err := &MissingFileError{Path: "x"}
		if !errors.Is(err, ErrMissingFile) {
			t.Error("MissingFileError should match ErrMissingFile")
		}
		if !errors.Is(err, ErrSchemaLoad) {
			t.Error("MissingFileError should match ErrSchemaLoad")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &MissingFileError{}
		if errors.Is(err, ErrForbiddenPath) {
			t.Error("MissingFileError should not match ErrForbiddenPath")
		}
		if errors.Is(err, ErrSubmissionLoad) {
			t.Error("MissingFileError should not match ErrSubmissionLoad")
		}
	})
}

func TestMalformedSchemaError(t *testing.T) {
	t.Run("Error message with location", func(t *testing.T) {
		err := &MalformedSchemaError{
			Path:    "schemas/FSA029-Schema.xsd",
			Line:    12,
			Column:  3,
			Message: "unexpected end of file",
		}
		want := "malformed schema schemas/FSA029-Schema.xsd at line 12, column 3: unexpected end of file"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := &MalformedSchemaError{Message: "compile failed", Cause: cause}
		want := "malformed schema: compile failed: boom"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrMalformedSchema and ErrSchemaLoad", func(t *testing.T) {
		err := &MalformedSchemaError{}
		if !errors.Is(err, ErrMalformedSchema) {
			t.Error("MalformedSchemaError should match ErrMalformedSchema")
		}
		if !errors.Is(err, ErrSchemaLoad) {
			t.Error("MalformedSchemaError should match ErrSchemaLoad")
		}
	})

	t.Run("As extracts MalformedSchemaError", func(t *testing.T) {
		var target *MalformedSchemaError
		err := error(&MalformedSchemaError{Line: 7})
		if !errors.As(err, &target) {
			t.Fatal("As should extract MalformedSchemaError")
		}
		if target.Line != 7 {
			t.Errorf("expected line 7, got %d", target.Line)
		}
	})
}

func TestUnresolvedImportError(t *testing.T) {
	t.Run("Error message for missing dependency", func(t *testing.T) {
		err := &UnresolvedImportError{
			Namespace: "urn:fsa-gov-uk:MER:CommonTypes:14",
			Location:  "CommonTypes-Schema.xsd",
			Message:   "file not found in schema directory",
		}
		want := "unresolved import: CommonTypes-Schema.xsd (namespace urn:fsa-gov-uk:MER:CommonTypes:14): file not found in schema directory"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message for blocked resolution", func(t *testing.T) {
		err := &UnresolvedImportError{
			Location:  "http://example.com/CommonTypes-Schema.xsd",
			IsBlocked: true,
		}
		want := "blocked import resolution: http://example.com/CommonTypes-Schema.xsd"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrUnresolvedImport and ErrSchemaLoad", func(t *testing.T) {
		err := &UnresolvedImportError{}
		if !errors.Is(err, ErrUnresolvedImport) {
			t.Error("UnresolvedImportError should match ErrUnresolvedImport")
		}
		if !errors.Is(err, ErrSchemaLoad) {
			t.Error("UnresolvedImportError should match ErrSchemaLoad")
		}
	})
}

func TestSubmissionLoadError(t *testing.T) {
	t.Run("Error message with location", func(t *testing.T) {
		err := &SubmissionLoadError{
			Path:    "FSA029-Sample.xml",
			Line:    3,
			Message: "not well-formed XML",
		}
		want := "submission load error FSA029-Sample.xml at line 3: not well-formed XML"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches only ErrSubmissionLoad", func(t *testing.T) {
		err := &SubmissionLoadError{}
		if !errors.Is(err, ErrSubmissionLoad) {
			t.Error("SubmissionLoadError should match ErrSubmissionLoad")
		}
		if errors.Is(err, ErrSchemaLoad) {
			t.Error("SubmissionLoadError should not match ErrSchemaLoad")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("read failed")
		err := &SubmissionLoadError{Cause: cause}
		if !errors.Is(err, cause) {
			t.Error("SubmissionLoadError should wrap its cause")
		}
	})
}
