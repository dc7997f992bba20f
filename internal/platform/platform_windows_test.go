//go:build windows

package platform

import (
	"os/exec"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestApply_HideWindowSetsCreationFlags(t *testing.T) {
	cmd := exec.Command("cmd.exe")

	Apply(cmd, Capabilities{HideWindow: true})

	require.True(t, cmd.SysProcAttr.HideWindow)
	require.NotZero(t, cmd.SysProcAttr.CreationFlags&windows.CREATE_NO_WINDOW)
}

func TestApply_HideWindowKeepsExistingFlags(t *testing.T) {
	cmd := exec.Command("cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: windows.CREATE_NEW_PROCESS_GROUP}

	Apply(cmd, Capabilities{HideWindow: true})

	require.NotZero(t, cmd.SysProcAttr.CreationFlags&windows.CREATE_NEW_PROCESS_GROUP)
	require.NotZero(t, cmd.SysProcAttr.CreationFlags&windows.CREATE_NO_WINDOW)
}
