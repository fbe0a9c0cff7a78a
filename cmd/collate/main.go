package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/yaolongt/smua/config"
	"github.com/yaolongt/smua/internal/model"
	"github.com/yaolongt/smua/internal/service"
	applogger "github.com/yaolongt/smua/pkg/logger"
	"github.com/yaolongt/smua/pkg/xlsx"
)

// collate 读取工作目录下的三张导出表，生成 CDL_{时间戳}.xlsx 课程报表
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

	// 任何输入文件缺失都在做任何转换之前一次性报出并终止
	inputs := []string{
		cfg.Report.SessionFile,
		cfg.Report.ScheduleFile,
		cfg.Report.EnrolmentFile,
		cfg.Report.SchoolsFile,
	}
	for _, path := range inputs {
		if _, err := os.Stat(path); err != nil {
			logger.Fatal("输入文件缺失", zap.String("file", path))
		}
	}

	buildings, err := service.LoadSchools(cfg.Report.SchoolsFile)
	if err != nil {
		logger.Fatal("加载建筑名单失败", zap.Error(err))
	}

	sessionRows, err := xlsx.ReadFileColumns(cfg.Report.SessionFile, model.SessionHeaders, model.Sentinel)
	if err != nil {
		logger.Fatal("读取会话表失败", zap.Error(err))
	}
	scheduleRows, err := xlsx.ReadFileColumns(cfg.Report.ScheduleFile, model.ScheduleHeaders, model.Sentinel)
	if err != nil {
		logger.Fatal("读取排期表失败", zap.Error(err))
	}
	enrolmentRows, err := xlsx.ReadFileColumns(cfg.Report.EnrolmentFile, model.EnrolmentHeaders, model.Sentinel)
	if err != nil {
		logger.Fatal("读取报名汇总表失败", zap.Error(err))
	}

	svc := service.NewService(cfg, buildings, logger)

	f, err := svc.Collate.Collate(sessionRows, scheduleRows, enrolmentRows, cfg.Report.LongCourseDays)
	if err != nil {
		logger.Fatal("报表汇编失败", zap.Error(err))
	}
	defer f.Close()

	filename := fmt.Sprintf("CDL_%s.xlsx", time.Now().Format("20060102_1504"))
	if err := f.SaveAs(filename); err != nil {
		logger.Fatal("写出报表失败", zap.String("file", filename), zap.Error(err))
	}

	fmt.Printf("File compile successful. File name: %s\n", filename)
}
