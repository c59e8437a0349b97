package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/recipedeck/internal/domain"
)

const starterConfig = `recipedeck:
  api:
    # Base URL of the recipe backend, without the /api suffix.
    base_url: %q
    timeout: 30s
    list_selector: "$"
  identity:
    user_id: test
  log:
    dir: .recipedeck/logs
    debug: false
`

// Init writes a starter recipedeck.yaml under root and keeps the log dir out of git.
// An existing config file is left alone unless force is set.
func Init(root, baseURL string, force bool) (string, error) {
	root = filepath.Clean(root)
	path := filepath.Join(root, FileName)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	if err := os.MkdirAll(filepath.Join(root, ".recipedeck", "logs"), 0o755); err != nil {
		return "", &domain.OpError{Op: "config.init", Kind: domain.KindInvalidConfig, Path: root, Err: err}
	}

	content := fmt.Sprintf(starterConfig, baseURL)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", &domain.OpError{Op: "config.init", Kind: domain.KindInvalidConfig, Path: path, Err: err}
	}

	if err := ensureGitignore(root); err != nil {
		return "", &domain.OpError{Op: "config.init", Kind: domain.KindInvalidConfig, Path: root, Err: err}
	}
	return path, nil
}

func ensureGitignore(root string) error {
	const header = "# recipedeck"
	entries := []string{".recipedeck/"}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
