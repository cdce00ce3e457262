// Package alacritty locates Alacritty's configuration file and splices theme
// colors into it.
package alacritty

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Rshep3087/alacritty-themes/palette"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const colorsKey = "colors"

// NameNotFound is what CurrentThemeName reports when the configuration's
// colors section carries no name.
const NameNotFound = "ERROR: name not found"

// ErrNoColors is returned when a theme file has no colors section to apply.
var ErrNoColors = errors.New("theme has no colors section")

// ErrMultipleDocuments is returned for a configuration file holding more
// than one YAML document.
var ErrMultipleDocuments = errors.New("config holds more than one YAML document")

// ParseError reports a configuration file that is not a YAML mapping.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Engine applies themes to a single configuration file.
type Engine struct {
	fs     afero.Fs
	path   string
	logger *log.Logger

	// backupErr is the backup failure of the last Apply, if any
	backupErr error
}

// NewEngine returns an Engine for the configuration file at path.
func NewEngine(fsys afero.Fs, path string, logger *log.Logger) *Engine {
	return &Engine{fs: fsys, path: path, logger: logger}
}

// ConfigPath returns the configuration file the engine writes to.
func (e *Engine) ConfigPath() string {
	return e.path
}

// BackupPath inserts "-backup" before the extension of path:
// alacritty.yml becomes alacritty-backup.yml.
func BackupPath(path string) string {
	dir, file := filepath.Split(path)
	ext := filepath.Ext(file)
	stem := strings.TrimSuffix(file, ext)
	if stem == "" {
		return filepath.Join(dir, file+"-backup")
	}
	return filepath.Join(dir, stem+"-backup"+ext)
}

// Backup copies the configuration file next to itself unless a backup
// already exists. It reports whether a copy was made.
func (e *Engine) Backup() (bool, error) {
	backup := BackupPath(e.path)

	exists, err := afero.Exists(e.fs, backup)
	if err != nil {
		return false, fmt.Errorf("stat backup %s: %w", backup, err)
	}
	if exists {
		return false, nil
	}

	info, err := e.fs.Stat(e.path)
	if err != nil {
		return false, fmt.Errorf("stat config %s: %w", e.path, err)
	}

	data, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		return false, fmt.Errorf("read config %s: %w", e.path, err)
	}

	f, err := e.fs.OpenFile(backup, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("create backup %s: %w", backup, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("write backup %s: %w", backup, err)
	}

	if err := f.Close(); err != nil {
		return false, fmt.Errorf("close backup %s: %w", backup, err)
	}

	return true, nil
}

// Apply replaces the colors section of the configuration with the colors
// section of the theme at themePath. Everything outside colors is kept.
// The configuration is left untouched if either document fails to parse.
func (e *Engine) Apply(themePath string) error {
	e.backupErr = nil

	themeData, err := afero.ReadFile(e.fs, themePath)
	if err != nil {
		return fmt.Errorf("read theme %s: %w", themePath, err)
	}

	if _, err = palette.Parse(themeData); err != nil {
		return fmt.Errorf("%s: %w", themePath, err)
	}

	colors, err := themeColors(themeData)
	if err != nil {
		return fmt.Errorf("%s: %w", themePath, err)
	}

	configData, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", e.path, err)
	}

	doc, err := decodeDocument(configData)
	if err != nil {
		return &ParseError{Path: e.path, Err: err}
	}

	root, err := mappingRoot(doc)
	if err != nil {
		return &ParseError{Path: e.path, Err: err}
	}

	setKey(root, colorsKey, colors)

	out, err := encode(doc)
	if err != nil {
		return fmt.Errorf("encode config %s: %w", e.path, err)
	}

	// dropping the old colors node can orphan aliases that pointed into it
	var check yaml.Node
	if err = yaml.Unmarshal(out, &check); err != nil {
		return &ParseError{Path: e.path, Err: fmt.Errorf("merged config is invalid: %w", err)}
	}

	e.backup()

	if err := e.writeFile(out); err != nil {
		return err
	}

	e.logger.Debug("theme applied", "theme", themePath, "config", e.path)

	return nil
}

// CurrentThemeName returns colors.name from the configuration, or
// NameNotFound.
func (e *Engine) CurrentThemeName() (string, error) {
	data, err := afero.ReadFile(e.fs, e.path)
	if err != nil {
		return "", fmt.Errorf("read config %s: %w", e.path, err)
	}

	var doc struct {
		Colors struct {
			Name string `yaml:"name"`
		} `yaml:"colors"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", &ParseError{Path: e.path, Err: err}
	}

	if doc.Colors.Name == "" {
		return NameNotFound, nil
	}

	return doc.Colors.Name, nil
}

// BackupErr reports why the last Apply could not take a backup. It is nil
// when the backup was made or already existed.
func (e *Engine) BackupErr() error {
	return e.backupErr
}

// backup is Backup for the apply path: failures are logged and kept for
// BackupErr, never returned.
func (e *Engine) backup() {
	created, err := e.Backup()
	e.backupErr = err
	if err != nil {
		e.logger.Error("Failed to backup alacritty config file", "config", e.path, "error", err)
		return
	}
	if created {
		e.logger.Info("backup", "from", e.path, "to", BackupPath(e.path))
	}
}

// writeFile replaces the configuration through a temp file and a rename so
// that a failed write never leaves a truncated configuration behind.
func (e *Engine) writeFile(data []byte) (err error) {
	target := e.resolveLink()

	info, err := e.fs.Stat(target)
	if err != nil {
		return fmt.Errorf("stat config %s: %w", target, err)
	}

	tmp, err := afero.TempFile(e.fs, filepath.Dir(target), "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", target, err)
	}

	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = e.fs.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write config %s: %w", target, err)
	}

	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync config %s: %w", target, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close config %s: %w", target, err)
	}

	if err = e.fs.Chmod(tmpName, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod config %s: %w", target, err)
	}

	if err = e.fs.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replace config %s: %w", target, err)
	}

	return nil
}

// resolveLink returns the target of a symlinked configuration so the rename
// replaces the file and keeps the link.
func (e *Engine) resolveLink() string {
	lr, ok := e.fs.(afero.LinkReader)
	if !ok {
		return e.path
	}

	target, err := lr.ReadlinkIfPossible(e.path)
	if err != nil {
		return e.path
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(e.path), target)
	}

	return target
}

// themeColors returns the value node of the theme's top-level colors key.
func themeColors(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrNoColors
	}

	colors := lookup(doc.Content[0], colorsKey)
	if colors == nil || colors.Kind != yaml.MappingNode {
		return nil, ErrNoColors
	}

	return colors, nil
}

// decodeDocument reads the single YAML document in data. Empty input gives
// an empty document.
func decodeDocument(data []byte) (*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	var next yaml.Node
	if err := dec.Decode(&next); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrMultipleDocuments
	}

	return &doc, nil
}

// mappingRoot returns the top-level mapping of doc, turning an empty
// document into an empty mapping.
func mappingRoot(doc *yaml.Node) (*yaml.Node, error) {
	if doc.Kind == 0 {
		doc.Kind = yaml.DocumentNode
	}

	if doc.Kind != yaml.DocumentNode {
		return nil, errors.New("not a YAML document")
	}

	if len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New("top level is not a mapping")
	}

	return root, nil
}

func lookup(mapping *yaml.Node, key string) *yaml.Node {
	if mapping.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i+1]
		}
	}

	return nil
}

// setKey replaces the value of key in mapping, appending the pair when the
// key is missing.
func setKey(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			mapping.Content[i+1] = value
			return
		}
	}

	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

func encode(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
