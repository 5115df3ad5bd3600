package service

import (
	"os/exec"
	"runtime"
)

// OpenExternally 用宿主系统的默认程序打开附件文件
// 只负责把文件交给系统，进程启动后即返回，不等待也不关心结果
func (a *AttachmentStore) OpenExternally(storedName string) error {
	path, err := a.Path(storedName)
	if err != nil {
		return err
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return &IOError{Op: "调用系统打开附件", Err: err}
	}
	return nil
}
