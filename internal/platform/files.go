package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
	CmdCommand      = "cmd"
	StartCommand    = "start"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
	WindowsCmdFlag     = "/c"
)

// Application data layout
const (
	AppDirName      = "group-creator"
	JournalFileName = "groupe_info.txt"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Logo image extensions accepted by the picker
var (
	LogoExtensions = []string{".png", ".jpg", ".jpeg"}
)

// DefaultJournalPath returns the group log location under the XDG data directory.
// Falls back to a file in the working directory when the data dir is unusable.
func DefaultJournalPath() string {
	path, err := xdg.DataFile(filepath.Join(AppDirName, JournalFileName))
	if err != nil {
		return JournalFileName
	}
	return path
}

// IsSupportedLogo reports whether the path has an accepted image extension
func IsSupportedLogo(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range LogoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// CheckLogoFile verifies that path is an existing regular file with an accepted extension
func CheckLogoFile(path string) error {
	if !IsSupportedLogo(path) {
		return fmt.Errorf("unsupported logo format: %s", filepath.Ext(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("logo not readable: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("logo is a directory: %s", path)
	}
	return nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// Errors returned by the reveal/open helpers
var (
	ErrUnsupportedOS = errors.New("unsupported operating system")
	ErrNoFileManager = errors.New("no file manager found")
)

// OpenFileInManager shows the file in the system file manager.
// Linux has no standard selection, so the parent directory is opened instead.
func OpenFileInManager(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	argv, err := revealCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	err = runCommand(argv)
	if err != nil && runtime.GOOS == OSLinux {
		return revealWithFileManager(filepath.Dir(absPath), err)
	}
	return err
}

// OpenFileWithDefaultApp opens the file with the application registered for its type
func OpenFileWithDefaultApp(filePath string) error {
	absPath, err := existingAbsPath(filePath)
	if err != nil {
		return err
	}

	argv, err := openCommand(runtime.GOOS, absPath)
	if err != nil {
		return err
	}
	return runCommand(argv)
}

// revealCommand returns the command line that shows absPath in a file manager
func revealCommand(goos, absPath string) ([]string, error) {
	switch goos {
	case OSDarwin:
		return []string{OpenCommand, MacOSSelectFlag, absPath}, nil
	case OSWindows:
		return []string{ExplorerCommand, WindowsSelectParam, absPath}, nil
	case OSLinux:
		return []string{XDGOpenCommand, filepath.Dir(absPath)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// openCommand returns the command line that opens absPath with its default application
func openCommand(goos, absPath string) ([]string, error) {
	switch goos {
	case OSDarwin:
		return []string{OpenCommand, absPath}, nil
	case OSWindows:
		return []string{CmdCommand, WindowsCmdFlag, StartCommand, "", absPath}, nil
	case OSLinux:
		return []string{XDGOpenCommand, absPath}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOS, goos)
	}
}

// revealWithFileManager tries each known Linux file manager after xdg-open failed
func revealWithFileManager(dir string, xdgErr error) error {
	errs := []error{xdgErr}
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err != nil {
			continue
		}
		if err := runCommand([]string{fm, dir}); err != nil {
			errs = append(errs, err)
			continue
		}
		return nil
	}
	return fmt.Errorf("%w for %s: %w", ErrNoFileManager, dir, errors.Join(errs...))
}

func existingAbsPath(filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("file does not exist: %w", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

func runCommand(argv []string) error {
	if err := exec.Command(argv[0], argv[1:]...).Run(); err != nil {
		return fmt.Errorf("run %s: %w", argv[0], err)
	}
	return nil
}
