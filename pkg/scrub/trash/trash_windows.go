//go:build windows

package trash

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// SHEmptyRecycleBinW flags: no confirmation dialog, no progress UI, no sound.
const (
	sherbNoConfirmation = 0x00000001
	sherbNoProgressUI   = 0x00000002
	sherbNoSound        = 0x00000004
)

var (
	shell32               = windows.NewLazySystemDLL("shell32.dll")
	procSHEmptyRecycleBin = shell32.NewProc("SHEmptyRecycleBinW")
)

// empty empties the Windows Recycle Bin for all drives.
func empty(dryRun bool) error {
	if dryRun {
		return nil
	}

	// hwnd and pszRootPath are both null: no owner window, all drives.
	hr, _, _ := procSHEmptyRecycleBin.Call(0, 0,
		uintptr(sherbNoConfirmation|sherbNoProgressUI|sherbNoSound))
	if hr != 0 {
		// An already-empty bin also reports failure here.
		return fmt.Errorf("SHEmptyRecycleBinW failed (hresult 0x%x)", hr)
	}
	return nil
}
