// Package service 承载与外部世界打交道的部分：附件文件的落盘与
// 读取、调用宿主系统打开文件、后台定时任务。
package service

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"garage/config"
	"garage/models"
	"garage/store"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IOError 附件文件读写失败
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s失败: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// 允许上传的扩展名及其对应的附件类型
// 类型在上传时根据扩展名确定一次，之后不再重新推导
var allowedExtensions = map[string]string{
	".jpg":  models.AttachmentImage,
	".jpeg": models.AttachmentImage,
	".png":  models.AttachmentImage,
	".webp": models.AttachmentImage,
	".pdf":  models.AttachmentPDF,
}

// AttachmentStore 附件存储
// 文件放在数据目录下的 attachments 目录，元数据行在数据库中。
// 上传先拷贝文件再写元数据行：中途失败最多留下一个无引用的
// 孤儿文件（无害、可离线清理），绝不会出现指向缺失文件的记录。
type AttachmentStore struct {
	db  *gorm.DB
	cfg *config.Config
	dir string // 延迟解析后缓存
}

// NewAttachmentStore 创建附件存储
func NewAttachmentStore(db *gorm.DB, cfg *config.Config) *AttachmentStore {
	return &AttachmentStore{db: db, cfg: cfg}
}

// Dir 解析附件目录，不存在则创建
// 延迟调用，多次调用幂等且始终返回同一路径
func (a *AttachmentStore) Dir() (string, error) {
	if a.dir != "" {
		return a.dir, nil
	}
	dataDir, err := a.cfg.ResolveDataDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(dataDir, "attachments")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &IOError{Op: "创建附件目录", Err: err}
	}
	a.dir = dir
	return dir, nil
}

// SaveFromReader 保存一个上传的附件
// 扩展名校验 -> 生成唯一落盘名 -> 拷贝文件 -> 写元数据行。
// 拷贝失败直接中止，不会留下元数据行。
func (a *AttachmentStore) SaveFromReader(paymentEntryID uint, originalName string, r io.Reader) (*models.Attachment, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	kind, ok := allowedExtensions[ext]
	if !ok {
		return nil, store.NewValidationError("不支持的附件格式: %s（支持 jpg/jpeg/png/webp/pdf）", ext)
	}

	// 校验付款记录存在，避免拷贝一个注定写不进库的文件
	var entry models.PaymentEntry
	if err := a.db.First(&entry, paymentEntryID).Error; err != nil {
		return nil, &store.NotFoundError{Entity: "付款记录", ID: paymentEntryID}
	}

	dir, err := a.Dir()
	if err != nil {
		return nil, err
	}

	storedName := uuid.New().String() + ext
	path := filepath.Join(dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Op: "创建附件文件", Err: err}
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(path)
		return nil, &IOError{Op: "写入附件文件", Err: err}
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return nil, &IOError{Op: "写入附件文件", Err: err}
	}

	att := models.Attachment{
		PaymentEntryID: paymentEntryID,
		OriginalName:   filepath.Base(originalName),
		StoredName:     storedName,
		Kind:           kind,
	}
	if err := a.db.Create(&att).Error; err != nil {
		// 元数据写入失败时尽力清掉刚拷贝的文件
		if rmErr := os.Remove(path); rmErr != nil {
			log.Printf("清理附件文件失败: %v", rmErr)
		}
		return nil, err
	}
	return &att, nil
}

// SaveFromPath 从本地路径保存附件（桌面端文件选择器给出的路径）
func (a *AttachmentStore) SaveFromPath(paymentEntryID uint, sourcePath string) (*models.Attachment, error) {
	src, err := os.Open(sourcePath)
	if err != nil {
		return nil, &IOError{Op: "读取源文件", Err: err}
	}
	defer src.Close()
	return a.SaveFromReader(paymentEntryID, filepath.Base(sourcePath), src)
}

// List 获取某条付款记录的全部附件
func (a *AttachmentStore) List(paymentEntryID uint) ([]models.Attachment, error) {
	var list []models.Attachment
	err := a.db.Where("payment_entry_id = ?", paymentEntryID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Get 按 ID 获取附件元数据
func (a *AttachmentStore) Get(id uint) (*models.Attachment, error) {
	var att models.Attachment
	if err := a.db.First(&att, id).Error; err != nil {
		return nil, &store.NotFoundError{Entity: "附件", ID: id}
	}
	return &att, nil
}

// Delete 删除附件
// 先删元数据行，再尽力删除落盘文件；行删掉之后文件删除失败
// 只记日志不报错（文件成为孤儿，代价远低于悬空的数据库引用）。
func (a *AttachmentStore) Delete(id uint) error {
	att, err := a.Get(id)
	if err != nil {
		return err
	}
	if err := a.db.Delete(&models.Attachment{}, id).Error; err != nil {
		return err
	}

	dir, err := a.Dir()
	if err != nil {
		log.Printf("删除附件文件失败: %v", err)
		return nil
	}
	if err := os.Remove(filepath.Join(dir, att.StoredName)); err != nil && !os.IsNotExist(err) {
		log.Printf("删除附件文件失败: %v", err)
	}
	return nil
}

// Path 把落盘名解析成磁盘路径，供流式下发
// 落盘名不允许带路径分隔符，防止目录穿越
func (a *AttachmentStore) Path(storedName string) (string, error) {
	if storedName == "" || filepath.Base(storedName) != storedName {
		return "", store.NewValidationError("非法的附件文件名")
	}
	dir, err := a.Dir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, storedName)
	if _, err := os.Stat(path); err != nil {
		return "", &store.NotFoundError{Entity: "附件文件", ID: 0}
	}
	return path, nil
}

// FileURL 生成展示层可直接流式访问的地址
func (a *AttachmentStore) FileURL(storedName string) string {
	return "/files/attachments/" + storedName
}
