package filecache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"
)

const (
	// FormatVersion is the semantic version of the on-disk layout. The
	// major component changes whenever existing entry files become
	// unreadable (record framing, digest algorithm).
	FormatVersion = "1.0.0"

	// digestAlgorithm names the hash used to derive entry filenames. It is
	// part of the on-disk format: a directory written with a different
	// digest holds entries this cache could never find.
	digestAlgorithm = "sha256"

	// formatFileName is the descriptor file kept alongside entries. Its
	// extension deliberately differs from the entry extension so Clear
	// leaves it alone.
	formatFileName = "format.json"
)

// formatDescriptor is persisted once per cache directory and verified on
// every subsequent open.
type formatDescriptor struct {
	FormatVersion string `json:"format_version"`
	Digest        string `json:"digest"`
}

// verifyOrWriteFormat loads the directory's format descriptor if present
// and checks it is compatible with this package. A missing descriptor is
// written. Incompatible descriptors fail with ErrFormatMismatch rather than
// letting reads silently miss every key.
func verifyOrWriteFormat(dir string) error {
	path := filepath.Join(dir, formatFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return writeFormat(path)
	}
	if err != nil {
		return fmt.Errorf("reading format descriptor: %w", err)
	}

	var have formatDescriptor
	if err := json.Unmarshal(data, &have); err != nil {
		return fmt.Errorf("%w: unreadable descriptor %s: %v", ErrFormatMismatch, path, err)
	}

	if have.Digest != digestAlgorithm {
		return fmt.Errorf("%w: directory uses digest %q, this build uses %q",
			ErrFormatMismatch, have.Digest, digestAlgorithm)
	}

	haveVer, err := semver.NewVersion(have.FormatVersion)
	if err != nil {
		return fmt.Errorf("%w: bad format version %q: %v", ErrFormatMismatch, have.FormatVersion, err)
	}
	wantVer := semver.MustParse(FormatVersion)
	if haveVer.Major() != wantVer.Major() {
		return fmt.Errorf("%w: directory format v%s, this build reads v%s",
			ErrFormatMismatch, have.FormatVersion, FormatVersion)
	}

	return nil
}

func writeFormat(path string) error {
	want := formatDescriptor{
		FormatVersion: FormatVersion,
		Digest:        digestAlgorithm,
	}
	data, err := json.MarshalIndent(want, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding format descriptor: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing format descriptor: %w", err)
	}
	return nil
}
