package jobs

import (
	"strconv"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/labstack/gommon/log"

	"trufapro/internal/domain/entity"
	"trufapro/internal/domain/report"
	"trufapro/internal/service"
)

// BackupReminder logs a daily warning while the data has gone more
// than a week without an export. The dashboard carries the same alert;
// this keeps it visible in the server logs for a headless run.
type BackupReminder struct {
	settingRepo service.SettingRepository
	scheduler   *gocron.Scheduler
}

func NewBackupReminder(settingRepo service.SettingRepository) *BackupReminder {
	return &BackupReminder{
		settingRepo: settingRepo,
		scheduler:   gocron.NewScheduler(time.Local),
	}
}

func (b *BackupReminder) Start() {
	_, err := b.scheduler.Every(1).Day().At("09:00").Do(b.check)
	if err != nil {
		log.Errorf("failed to schedule backup reminder: %v", err)
		return
	}
	b.scheduler.StartAsync()
	log.Info("Backup reminder job started")
}

func (b *BackupReminder) Stop() {
	b.scheduler.Stop()
}

func (b *BackupReminder) check() {
	raw, err := b.settingRepo.Get(entity.SettingLastBackup)
	if err != nil {
		log.Errorf("backup reminder: failed to read last backup: %v", err)
		return
	}

	var lastBackup int64
	if raw != "" {
		lastBackup, _ = strconv.ParseInt(raw, 10, 64)
	}
	if alert, ok := report.BackupReminder(lastBackup, time.Now()); ok {
		log.Warnf("%s: %s", alert.Title, alert.Message)
	}
}
