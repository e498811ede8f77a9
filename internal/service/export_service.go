package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"bienstar/backend/internal/dto"
	"bienstar/backend/internal/repository"
	"bienstar/backend/pkg/translate"
)

// ExportService 评估历史导出业务接口
type ExportService interface {
	// ExportHistory 导出用户全部评估历史为 Excel，返回文件内容与文件名
	ExportHistory(ctx context.Context, userID int64, languageID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo       *repository.Repository
	translator *textTranslator
	logger     *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, tt *textTranslator, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, translator: tt, logger: logger}
}

// historyHeaders 表头，按目标语言选择
var historyHeaders = map[string][]string{
	"es": {"Meta", "Objetivo", "Fecha de evaluación", "Fecha fin", "Respuesta", "Comentario", "Fecha de creación", "Fecha de término"},
	"en": {"Goal", "Objective", "Evaluation date", "End date", "Response", "Comment", "Created on", "Due date"},
}

var historySheetNames = map[string]string{
	"es": "Historial",
	"en": "History",
}

func (s *exportService) ExportHistory(ctx context.Context, userID int64, languageID string) (*bytes.Buffer, string, error) {
	// 1. 查询全部历史
	rows, err := s.repo.Evaluation.ListHistory(ctx, userID, 0, 0)
	if err != nil {
		s.logger.Error("查询评估历史失败", zap.Int64("id_usuario", userID), zap.Error(err))
		return nil, "", storeError(err)
	}

	// 2. 翻译
	target := translate.ResolveLanguageID(languageID)
	items := toHistoryItems(rows)
	translateHistory(ctx, s.translator, items, target)

	// 3. 生成 Excel
	buf, err := s.writeHistorySheet(items, target)
	if err != nil {
		s.logger.Error("写入 Excel 失败", zap.Int64("id_usuario", userID), zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("evaluaciones_%d.xlsx", userID)
	return buf, filename, nil
}

func (s *exportService) writeHistorySheet(items []dto.HistoryItem, target language.Tag) (*bytes.Buffer, error) {
	code := translate.Code(target)
	headers, ok := historyHeaders[code]
	if !ok {
		headers = historyHeaders["es"]
		code = "es"
	}
	sheetName := historySheetNames[code]

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	// 设置列宽
	f.SetColWidth(sheetName, "A", "B", 40)
	f.SetColWidth(sheetName, "C", "D", 16)
	f.SetColWidth(sheetName, "E", "E", 24)
	f.SetColWidth(sheetName, "F", "F", 40)
	f.SetColWidth(sheetName, "G", "H", 16)

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	// 数据行
	row := 2
	for _, it := range items {
		f.SetCellValue(sheetName, cell("A", row), it.DesMeta)
		f.SetCellValue(sheetName, cell("B", row), it.DesObjetivo)
		f.SetCellValue(sheetName, cell("C", row), it.FechaInicio)
		f.SetCellValue(sheetName, cell("D", row), it.FechaFin)
		f.SetCellValue(sheetName, cell("E", row), it.Respuesta)
		f.SetCellValue(sheetName, cell("F", row), derefString(it.Comentario))
		f.SetCellValue(sheetName, cell("G", row), it.FechaCreacion)
		f.SetCellValue(sheetName, cell("H", row), it.FechaTerminado)
		row++
	}

	// 写入 buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
