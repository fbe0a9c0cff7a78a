package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/yaolongt/smua/config"
	"github.com/yaolongt/smua/internal/model"
	"github.com/yaolongt/smua/internal/service"
	applogger "github.com/yaolongt/smua/pkg/logger"
	"github.com/yaolongt/smua/pkg/xlsx"
)

// compare 对比工作目录下前后两份 CDL 报表，生成 Combined_CDL_{旧}-{新}.xlsx，
// 并把两份输入文件的 Last Updated 列刷新为本次对比时间
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	files, err := findReportFiles(".")
	if err != nil {
		logger.Fatal("查找报表文件失败", zap.Error(err))
	}
	if len(files) != 2 {
		logger.Fatal("工作目录下必须恰好有 2 份 CDL 报表", zap.Int("found", len(files)))
	}

	// 文件名含时间戳，字典序即时间序：files[0] 为旧，files[1] 为新
	// Last Updated 列每轮运行都会重写，不参与对比，读入时跳过
	compareHeaders := model.ReportHeaders[:len(model.ReportHeaders)-1]

	oldRaw, err := xlsx.ReadFileColumns(files[0], compareHeaders, model.Sentinel)
	if err != nil {
		logger.Fatal("读取旧报表失败", zap.String("file", files[0]), zap.Error(err))
	}
	newRaw, err := xlsx.ReadFileColumns(files[1], compareHeaders, model.Sentinel)
	if err != nil {
		logger.Fatal("读取新报表失败", zap.String("file", files[1]), zap.Error(err))
	}

	oldRows := service.ReportRowsFromRows(oldRaw)
	newRows := service.ReportRowsFromRows(newRaw)

	svc := service.NewService(cfg, nil, logger)
	now := time.Now().Format("2006-01-02 15:04")

	diffRows, err := svc.Diff.Compare(oldRows, newRows, now)
	if err != nil {
		logger.Fatal("报表对比失败", zap.Error(err))
	}

	sortDiffRows(diffRows)

	f, err := service.BuildDiffWorkbook(diffRows)
	if err != nil {
		logger.Fatal("生成对比报表失败", zap.Error(err))
	}
	defer f.Close()

	filename := fmt.Sprintf("Combined_CDL_%s-%s.xlsx", reportStamp(files[0]), reportStamp(files[1]))
	if err := f.SaveAs(filename); err != nil {
		logger.Fatal("写出对比报表失败", zap.String("file", filename), zap.Error(err))
	}

	// 回写两份输入文件的 Last Updated
	for _, pair := range []struct {
		path string
		rows []*model.CourseReportRow
	}{{files[0], oldRows}, {files[1], newRows}} {
		if err := stampReport(pair.path, pair.rows, now); err != nil {
			logger.Fatal("回写报表时间戳失败", zap.String("file", pair.path), zap.Error(err))
		}
	}

	fmt.Printf("File compile successful. File name: %s\n", filename)
}

// findReportFiles 收集目录下所有 CDL_*.xlsx，按文件名排序
func findReportFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, "CDL_") && strings.HasSuffix(name, ".xlsx") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

// reportStamp 从文件名 CDL_{时间戳}.xlsx 中取出时间戳
func reportStamp(path string) string {
	name := filepath.Base(path)
	name = strings.TrimPrefix(name, "CDL_")
	return strings.TrimSuffix(name, ".xlsx")
}

// sortDiffRows 与报表一致：按（开课日期, 排期号）稳定排序
func sortDiffRows(rows []*model.DiffReportRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].StartDate != rows[j].StartDate {
			return rows[i].StartDate < rows[j].StartDate
		}
		return rows[i].CourseNo < rows[j].CourseNo
	})
}

// stampReport 把一份报表的 Last Updated 刷新后原地回写
func stampReport(path string, rows []*model.CourseReportRow, now string) error {
	for _, row := range rows {
		row.LastUpdated = "Last Updated: " + now
	}
	f, err := service.BuildPlainReportWorkbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}
