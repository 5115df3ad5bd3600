package api

import (
	"strconv"

	"garage/models"
	"garage/service"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler 附件处理器
type AttachmentHandler struct {
	attachments *service.AttachmentStore
}

// NewAttachmentHandler 创建附件处理器
func NewAttachmentHandler(a *service.AttachmentStore) *AttachmentHandler {
	return &AttachmentHandler{attachments: a}
}

// AttachmentView 附件展示行，带流式访问地址
type AttachmentView struct {
	models.Attachment
	URL string `json:"url"`
}

func (h *AttachmentHandler) view(att models.Attachment) AttachmentView {
	return AttachmentView{Attachment: att, URL: h.attachments.FileURL(att.StoredName)}
}

// Upload 上传附件
// @Summary 上传付款凭证附件
// @Description 支持 multipart 文件上传（字段 file）或桌面端文件选择器给出的本地路径（字段 source_path）。先拷贝文件再写元数据。
// @Tags 附件
// @Accept mpfd
// @Produce json
// @Param id path int true "付款记录ID"
// @Param file formData file false "附件文件"
// @Param source_path formData string false "本地文件路径"
// @Success 200 {object} Outcome "上传成功"
// @Failure 400 {object} Outcome "格式不支持或参数错误"
// @Failure 404 {object} Outcome "付款记录不存在"
// @Router /api/v1/history/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var att *models.Attachment

	if fileHeader, fhErr := c.FormFile("file"); fhErr == nil {
		f, err := fileHeader.Open()
		if err != nil {
			BadRequest(c, SafeErrorMessage(err, "读取上传文件失败"))
			return
		}
		defer f.Close()
		att, err = h.attachments.SaveFromReader(uint(entryID), fileHeader.Filename, f)
		if err != nil {
			Fail(c, err)
			return
		}
	} else if sourcePath := c.PostForm("source_path"); sourcePath != "" {
		att, err = h.attachments.SaveFromPath(uint(entryID), sourcePath)
		if err != nil {
			Fail(c, err)
			return
		}
	} else {
		BadRequest(c, "缺少附件：请提供 file 或 source_path")
		return
	}

	Mutated(c, att.ID)
}

// List 获取某条付款记录的附件列表
// @Summary 获取附件列表
// @Tags 附件
// @Produce json
// @Param id path int true "付款记录ID"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Router /api/v1/history/{id}/attachments [get]
func (h *AttachmentHandler) List(c *gin.Context) {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	list, err := h.attachments.List(uint(entryID))
	if err != nil {
		Fail(c, err)
		return
	}
	views := make([]AttachmentView, 0, len(list))
	for _, att := range list {
		views = append(views, h.view(att))
	}
	Success(c, views)
}

// Address 获取附件的流式访问地址
// @Summary 获取附件地址
// @Tags 附件
// @Produce json
// @Param id path int true "附件ID"
// @Success 200 {object} map[string]interface{} "获取成功"
// @Failure 404 {object} Outcome "附件不存在"
// @Router /api/v1/attachments/{id}/address [get]
func (h *AttachmentHandler) Address(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	att, err := h.attachments.Get(uint(id))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, h.attachments.FileURL(att.StoredName))
}

// Delete 删除附件
// @Summary 删除附件
// @Description 先删元数据行，落盘文件尽力删除，失败只记日志
// @Tags 附件
// @Produce json
// @Param id path int true "附件ID"
// @Success 200 {object} Outcome "删除成功"
// @Failure 404 {object} Outcome "附件不存在"
// @Router /api/v1/attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	if err := h.attachments.Delete(uint(id)); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, 0)
}

// Open 用系统默认程序打开附件
// @Summary 外部打开附件
// @Tags 附件
// @Produce json
// @Param id path int true "附件ID"
// @Success 200 {object} Outcome "已交给系统打开"
// @Failure 404 {object} Outcome "附件不存在"
// @Router /api/v1/attachments/{id}/open [post]
func (h *AttachmentHandler) Open(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	att, err := h.attachments.Get(uint(id))
	if err != nil {
		Fail(c, err)
		return
	}
	if err := h.attachments.OpenExternally(att.StoredName); err != nil {
		Fail(c, err)
		return
	}
	Mutated(c, 0)
}

// Serve 流式下发附件文件
// 大文件不经过内存整体加载，直接走 http.ServeFile
// @Summary 下载/预览附件文件
// @Tags 附件
// @Produce octet-stream
// @Param name path string true "落盘文件名"
// @Success 200 {file} file "文件内容"
// @Failure 404 {object} Outcome "文件不存在"
// @Router /files/attachments/{name} [get]
func (h *AttachmentHandler) Serve(c *gin.Context) {
	path, err := h.attachments.Path(c.Param("name"))
	if err != nil {
		Fail(c, err)
		return
	}
	c.File(path)
}
