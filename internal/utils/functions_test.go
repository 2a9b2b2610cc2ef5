package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/unicodetools/ucdsync/internal/utils"
)

func TestParseHeaderArgs(t *testing.T) {
	headers := utils.ParseHeaderArgs([]string{
		"Authorization: Basic dXNlcjpwYXNz",
		"X-Custom:value",
		"malformed-no-colon",
	})
	gt.Equal(t, headers["Authorization"], "Basic dXNlcjpwYXNz")
	gt.Equal(t, headers["X-Custom"], "value")
	gt.Equal(t, len(headers), 2)
}

func TestReadFetchList(t *testing.T) {
	t.Run("valid manifest keeps order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "files.yaml")
		manifest := "- path: CaseFolding.txt\n- path: UnicodeData.txt\n- path: emoji/emoji-data.txt\n"
		gt.NoError(t, os.WriteFile(path, []byte(manifest), 0644))
		descriptors, err := utils.ReadFetchList(path)
		gt.NoError(t, err)
		gt.Equal(t, descriptors, []string{"CaseFolding.txt", "UnicodeData.txt", "emoji/emoji-data.txt"})
	})

	t.Run("missing path rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "files.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("- path: CaseFolding.txt\n- path: \"\"\n"), 0644))
		_, err := utils.ReadFetchList(path)
		gt.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := utils.ReadFetchList(filepath.Join(t.TempDir(), "nope.yaml"))
		gt.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "files.yaml")
		gt.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))
		_, err := utils.ReadFetchList(path)
		gt.Error(t, err)
	})
}
