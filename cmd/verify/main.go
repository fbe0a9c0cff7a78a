package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/yaolongt/smua/config"
	"github.com/yaolongt/smua/internal/model"
	"github.com/yaolongt/smua/internal/service"
	applogger "github.com/yaolongt/smua/pkg/logger"
	"github.com/yaolongt/smua/pkg/xlsx"
)

// verify 把时间表导出（TMS*.xlsx）逐场次对照场地预订导出（FBS*.xlsx）核对，
// 结果写入 output.xlsx，按核对结论分色
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

	tmsFile := findByPrefix(".", cfg.Verify.TimetablePrefix)
	fbsFile := findByPrefix(".", cfg.Verify.BookingPrefix)
	if tmsFile == "" || fbsFile == "" {
		logger.Fatal("输入文件缺失",
			zap.String("timetable_prefix", cfg.Verify.TimetablePrefix),
			zap.String("booking_prefix", cfg.Verify.BookingPrefix),
		)
	}

	tmsRows, err := xlsx.ReadFileColumns(tmsFile, model.TimetableHeaders, model.Sentinel)
	if err != nil {
		logger.Fatal("读取时间表失败", zap.String("file", tmsFile), zap.Error(err))
	}
	fbsRows, err := xlsx.ReadFileColumns(fbsFile, model.BookingHeaders, model.Sentinel)
	if err != nil {
		logger.Fatal("读取预订表失败", zap.String("file", fbsFile), zap.Error(err))
	}

	svc := service.NewService(cfg, nil, logger)

	sessions, err := service.TimetableFromRows(tmsRows, svc.VerifyNormalizer)
	if err != nil {
		logger.Fatal("时间表类型化失败", zap.Error(err))
	}
	bookings, err := service.BookingsFromRows(fbsRows, svc.VerifyNormalizer)
	if err != nil {
		logger.Fatal("预订表类型化失败", zap.Error(err))
	}

	results := svc.Verify.Verify(sessions, bookings)

	f, err := service.BuildVerificationWorkbook(results)
	if err != nil {
		logger.Fatal("生成核对结果失败", zap.Error(err))
	}
	defer f.Close()

	if err := f.SaveAs(cfg.Verify.OutputFile); err != nil {
		logger.Fatal("写出核对结果失败", zap.String("file", cfg.Verify.OutputFile), zap.Error(err))
	}

	fmt.Printf("File compile successful. File name: %s\n", cfg.Verify.OutputFile)
}

// findByPrefix 返回目录下第一个命中 {前缀}*.xlsx 的文件名，找不到返回空串
func findByPrefix(dir, prefix string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	for _, e := range entries {
		name := e.Name()
		if !e.IsDir() && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".xlsx") {
			return name
		}
	}
	return ""
}
