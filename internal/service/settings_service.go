package service

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"

	"trufapro/internal/contract"
	"trufapro/internal/domain/entity"
	"trufapro/internal/utils"
	"trufapro/internal/utils/apierror"
)

type DefaultSettingsService struct {
	SettingRepo SettingRepository
	Validate    *validator.Validate
}

func NewSettingsService(settingRepo SettingRepository, validate *validator.Validate) *DefaultSettingsService {
	return &DefaultSettingsService{
		SettingRepo: settingRepo,
		Validate:    validate,
	}
}

func (s *DefaultSettingsService) GetSettings() (*contract.SettingsResponse, apierror.ErrorResponse) {
	resp := &contract.SettingsResponse{}
	for _, key := range []string{
		entity.SettingName, entity.SettingImage, entity.SettingTheme, entity.SettingLastBackup,
	} {
		value, err := s.SettingRepo.Get(key)
		if err != nil {
			log.Errorf("failed to read setting %s: %v", key, err)
			return nil, apierror.InternalServerError
		}
		switch key {
		case entity.SettingName:
			resp.Name = value
		case entity.SettingImage:
			resp.Image = value
		case entity.SettingTheme:
			resp.Theme = value
		case entity.SettingLastBackup:
			if value != "" {
				millis, perr := strconv.ParseInt(value, 10, 64)
				if perr == nil {
					resp.LastBackup = millis
				}
			}
		}
	}
	if resp.Theme == "" {
		resp.Theme = "light"
	}
	return resp, nil
}

func (s *DefaultSettingsService) UpdateSettings(req *contract.SettingsRequest) (*contract.SettingsResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, apierror.FromValidationError(valerr)
	}

	updates := map[string]*string{
		entity.SettingName:  req.Name,
		entity.SettingImage: req.Image,
		entity.SettingTheme: req.Theme,
	}
	for key, value := range updates {
		if value == nil {
			continue
		}
		if err := s.SettingRepo.Set(key, *value); err != nil {
			log.Errorf("failed to write setting %s: %v", key, err)
			return nil, apierror.InternalServerError
		}
	}
	return s.GetSettings()
}
