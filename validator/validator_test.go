package validator

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/fsatools/fsatools/internal/severity"
	"github.com/fsatools/fsatools/schema"
	"github.com/fsatools/fsatools/xsderrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	schemasDir     = "../testdata/schemas"
	submissionsDir = "../testdata/submissions"
)

func loadBundle(t *testing.T) *schema.Bundle {
	t.Helper()
	bundle, err := schema.Load(schemasDir)
	require.NoError(t, err, "schema fixtures must load")
	return bundle
}

func TestValidateConformantSubmission(t *testing.T) {
	bundle := loadBundle(t)

	result, err := Validate(bundle, submissionsDir+"/FSA029-Sample-Valid.xml")
	require.NoError(t, err)

	assert.True(t, result.Conformant)
	assert.Empty(t, result.Violations)
	assert.Zero(t, result.ViolationCount())
	assert.Equal(t, submissionsDir+"/FSA029-Sample-Valid.xml", result.SubmissionPath)
	assert.Positive(t, result.SourceSize)
}

func TestValidateReportsViolationWithLocation(t *testing.T) {
	bundle := loadBundle(t)

	result, err := Validate(bundle, submissionsDir+"/FSA029-SampleFull.xml")
	require.NoError(t, err, "schema violations are results, not errors")

	assert.False(t, result.Conformant)
	require.NotEmpty(t, result.Violations)

	v := result.Violations[0]
	assert.Equal(t, 1, v.Index)
	assert.Equal(t, severity.SeverityError, v.Severity)
	assert.Positive(t, v.Line, "violations carry 1-based line numbers")
	assert.NotEmpty(t, v.Message)

	// The sample's defect is a misplaced PartnershipsSoleTraders element,
	// and a reader of the listing must be able to tell that from the
	// violations alone, either from the message or from the instance path
	// that Display folds in.
	var displayed []string
	for _, violation := range result.Violations {
		displayed = append(displayed, violation.Display())
	}
	assert.Contains(t, strings.Join(displayed, "\n"), "PartnershipsSoleTraders",
		"violation listing names the offending element")
}

func TestValidateCollectsAllViolations(t *testing.T) {
	bundle := loadBundle(t)

	result, err := Validate(bundle, submissionsDir+"/FSA029-Sample-TwoErrors.xml")
	require.NoError(t, err)

	assert.False(t, result.Conformant)
	require.GreaterOrEqual(t, result.ViolationCount(), 2,
		"validation continues past the first violation")

	for i, v := range result.Violations {
		assert.Equal(t, i+1, v.Index, "violations are numbered in document order")
		assert.Equal(t, severity.SeverityError, v.Severity)
	}
}

func TestValidateForbiddenSubmissionPath(t *testing.T) {
	bundle := loadBundle(t)

	_, err := Validate(bundle, "archive/CommonTypes/v14/FSA029-Sample.xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, xsderrors.ErrForbiddenPath)
}

func TestValidateMissingSubmission(t *testing.T) {
	bundle := loadBundle(t)

	_, err := Validate(bundle, submissionsDir+"/no-such-file.xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, xsderrors.ErrSubmissionLoad)
	assert.NotErrorIs(t, err, xsderrors.ErrSchemaLoad)

	var subErr *xsderrors.SubmissionLoadError
	require.ErrorAs(t, err, &subErr)
	assert.True(t, errors.Is(subErr.Cause, fs.ErrNotExist))
}

func TestValidateDoctypeSubmission(t *testing.T) {
	bundle := loadBundle(t)

	_, err := Validate(bundle, submissionsDir+"/FSA029-Sample-DTD.xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, xsderrors.ErrSubmissionLoad)

	var subErr *xsderrors.SubmissionLoadError
	require.ErrorAs(t, err, &subErr)
	assert.Contains(t, subErr.Message, "document type declarations")
}

func TestValidateMalformedSubmission(t *testing.T) {
	bundle := loadBundle(t)

	_, err := Validate(bundle, submissionsDir+"/malformed.xml")
	require.Error(t, err)
	assert.ErrorIs(t, err, xsderrors.ErrSubmissionLoad,
		"a document that does not parse is a load failure, not a violation list")
}

func TestValidateInMemorySource(t *testing.T) {
	bundle := loadBundle(t)

	result, err := ValidateWithOptions(
		WithBundle(bundle),
		WithSource([]byte(`<?xml version="1.0"?>
<FSA029-BalanceSheet xmlns="urn:fsa-gov-uk:MER:FSA029:4">
  <ReportingCurrency>USD</ReportingCurrency>
  <Capital>
    <IncorporatedEntities>10.00</IncorporatedEntities>
  </Capital>
  <Liabilities>5.00</Liabilities>
</FSA029-BalanceSheet>`)),
	)
	require.NoError(t, err)
	assert.True(t, result.Conformant)
	assert.Empty(t, result.SubmissionPath)
}

func TestValidateAgainstStandaloneBundle(t *testing.T) {
	bundle, err := schema.Load("../testdata/schemas-standalone")
	require.NoError(t, err)
	require.True(t, bundle.SelfContained())

	result, err := Validate(bundle, submissionsDir+"/FSA029-Sample-Standalone.xml")
	require.NoError(t, err)
	assert.True(t, result.Conformant)
}

func TestValidateOptionErrors(t *testing.T) {
	bundle := loadBundle(t)

	tests := []struct {
		name    string
		opts    []Option
		wantMsg string
	}{
		{"no bundle", []Option{WithSubmissionPath("x.xml")}, "WithBundle"},
		{"no input", []Option{WithBundle(bundle)}, "input source"},
		{
			"two inputs",
			[]Option{WithBundle(bundle), WithSubmissionPath("x.xml"), WithSource([]byte("<a/>"))},
			"exactly one input source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateWithOptions(tt.opts...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
