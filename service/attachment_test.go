package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"garage/config"
	"garage/database"
	"garage/models"
	"garage/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAttachmentStore(t *testing.T) (*AttachmentStore, *gorm.DB) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.PortableDataDirEnv, "")

	db, err := database.OpenFile(filepath.Join(dir, "test.db"))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Storage.DataDir = dir
	return NewAttachmentStore(db, cfg), db
}

// 造一条可以挂附件的付款记录
func mustCreateEntry(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	s := store.New(db)
	now := time.Date(2025, time.July, 10, 0, 0, 0, 0, time.Local)
	expenseID, err := s.CreateExpenseWithInitialPayment(now, store.ExpenseInput{
		Name:        "seguro del galpón",
		Amount:      120000,
		PaymentType: models.PaymentOneTime,
	})
	require.NoError(t, err)

	var entry models.PaymentEntry
	require.NoError(t, db.Where("expense_id = ?", expenseID).First(&entry).Error)
	return entry.ID
}

func TestDir_Idempotent(t *testing.T) {
	a, _ := newTestAttachmentStore(t)

	first, err := a.Dir()
	require.NoError(t, err)
	second, err := a.Dir()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	info, err := os.Stat(first)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveFromPath_PDFLifecycle(t *testing.T) {
	a, db := newTestAttachmentStore(t)
	entryID := mustCreateEntry(t, db)

	src := filepath.Join(t.TempDir(), "factura.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4 contenido"), 0o644))

	att, err := a.SaveFromPath(entryID, src)
	require.NoError(t, err)
	assert.Equal(t, models.AttachmentPDF, att.Kind)
	assert.Equal(t, "factura.pdf", att.OriginalName)
	assert.NotEqual(t, "factura.pdf", att.StoredName)
	assert.True(t, strings.HasSuffix(att.StoredName, ".pdf"))

	list, err := a.List(entryID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, att.ID, list[0].ID)

	path, err := a.Path(att.StoredName)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 contenido"), data)

	require.NoError(t, a.Delete(att.ID))

	list, err = a.List(entryID)
	require.NoError(t, err)
	assert.Empty(t, list)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveFromReader_Image(t *testing.T) {
	a, db := newTestAttachmentStore(t)
	entryID := mustCreateEntry(t, db)

	att, err := a.SaveFromReader(entryID, "comprobante.JPG", strings.NewReader("not-really-a-jpeg"))
	require.NoError(t, err)
	assert.Equal(t, models.AttachmentImage, att.Kind)
	assert.Equal(t, "comprobante.JPG", att.OriginalName)
	assert.True(t, strings.HasSuffix(att.StoredName, ".jpg"))

	path, err := a.Path(att.StoredName)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "not-really-a-jpeg", string(data))
}

func TestSaveFromReader_RejectsUnknownExtension(t *testing.T) {
	a, db := newTestAttachmentStore(t)
	entryID := mustCreateEntry(t, db)

	_, err := a.SaveFromReader(entryID, "virus.exe", strings.NewReader("x"))
	var validationErr *store.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// 格式不对时不应落盘任何文件
	dir, err := a.Dir()
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveFromReader_MissingEntry(t *testing.T) {
	a, _ := newTestAttachmentStore(t)

	_, err := a.SaveFromReader(9999, "foto.png", strings.NewReader("x"))
	var notFoundErr *store.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestDelete_ToleratesMissingFile(t *testing.T) {
	a, db := newTestAttachmentStore(t)
	entryID := mustCreateEntry(t, db)

	att, err := a.SaveFromReader(entryID, "foto.png", strings.NewReader("x"))
	require.NoError(t, err)

	dir, err := a.Dir()
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(dir, att.StoredName)))

	// 文件已被外部删掉，删除元数据行仍然成功
	require.NoError(t, a.Delete(att.ID))
	_, err = a.Get(att.ID)
	var notFoundErr *store.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestPath_RejectsTraversal(t *testing.T) {
	a, _ := newTestAttachmentStore(t)

	var validationErr *store.ValidationError
	for _, name := range []string{"", "../secreto.pdf", "sub/archivo.pdf"} {
		_, err := a.Path(name)
		require.ErrorAs(t, err, &validationErr, "name=%q", name)
	}

	_, err := a.Path("no-existe.pdf")
	var notFoundErr *store.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestFileURL(t *testing.T) {
	a, _ := newTestAttachmentStore(t)
	assert.Equal(t, "/files/attachments/abc.pdf", a.FileURL("abc.pdf"))
}
