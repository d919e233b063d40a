package router

import (
	"time"

	"gorm.io/gorm"

	advisoryCtrl "github.com/villageboy09/kiosk/pkg/advisory/controllerImp"
	advisorySvc "github.com/villageboy09/kiosk/pkg/advisory/serviceImp"
	catalogRepo "github.com/villageboy09/kiosk/pkg/catalog/repositoryImp"
	componentCtrl "github.com/villageboy09/kiosk/pkg/component/controllerImp"
	componentSvc "github.com/villageboy09/kiosk/pkg/component/serviceImp"
	cropCtrl "github.com/villageboy09/kiosk/pkg/crop/controllerImp"
	cropSvc "github.com/villageboy09/kiosk/pkg/crop/serviceImp"
	healthCtrl "github.com/villageboy09/kiosk/pkg/health/controllerImp"
	identifiedCtrl "github.com/villageboy09/kiosk/pkg/identified/controllerImp"
	identifiedRepo "github.com/villageboy09/kiosk/pkg/identified/repositoryImp"
	identifiedSvc "github.com/villageboy09/kiosk/pkg/identified/serviceImp"
	"github.com/villageboy09/kiosk/pkg/logger"
	problemCtrl "github.com/villageboy09/kiosk/pkg/problem/controllerImp"
	problemSvc "github.com/villageboy09/kiosk/pkg/problem/serviceImp"
	stageCtrl "github.com/villageboy09/kiosk/pkg/stage/controllerImp"
	stageSvc "github.com/villageboy09/kiosk/pkg/stage/serviceImp"
)

// NewControllers wires repositories, services and controllers over db.
func NewControllers(db *gorm.DB, log *logger.Logger, queryTimeout time.Duration) Controllers {
	catalog := catalogRepo.New(db, log, queryTimeout)
	return Controllers{
		Crop:       cropCtrl.NewCropCtrl(cropSvc.NewCropService(catalog, log), log),
		Stage:      stageCtrl.NewStageCtrl(stageSvc.NewStageService(catalog, log), log),
		Problem:    problemCtrl.NewProblemCtrl(problemSvc.NewProblemService(catalog, log), log),
		Advisory:   advisoryCtrl.NewAdvisoryCtrl(advisorySvc.NewAdvisoryService(catalog, log), log),
		Component:  componentCtrl.NewComponentCtrl(componentSvc.NewComponentService(catalog, log), log),
		Identified: identifiedCtrl.NewIdentifiedCtrl(identifiedSvc.NewIdentifiedService(identifiedRepo.New(db), log), log),
		Health:     healthCtrl.NewHealthCtrl(db, log),
	}
}
