// file: internals/features/school/schedules/controller/backfill_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	calsvc "presensiku_backend/internals/features/school/calendar/service"
	d "presensiku_backend/internals/features/school/schedules/dto"
	svc "presensiku_backend/internals/features/school/schedules/service"
	helper "presensiku_backend/internals/helpers"
)

type BackfillController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewBackfill(db *gorm.DB, v *validator.Validate) *BackfillController {
	return &BackfillController{DB: db, Validate: v}
}

// POST /api/a/lessons/generate-all
// Materialisasi ulang semua rule. Tidak ada cek duplikat: dipanggil dua
// kali berarti pertemuan dobel (lihat catatan di materializer).
func (ctl *BackfillController) GenerateLessons(c *fiber.Ctx) error {
	cal, err := calsvc.LoadSchoolCalendar(ctl.DB, time.Now())
	if err != nil {
		if errors.Is(err, calsvc.ErrNoAcademicYear) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Tahun ajaran belum dikonfigurasi")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	created, err := svc.GenerateAllLessons(ctl.DB, cal)
	if err != nil {
		// laporkan progres parsial supaya operator tahu sampai mana
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"generate berhenti setelah "+strconv.Itoa(created)+" pertemuan: "+err.Error())
	}
	return helper.JsonOK(c, "Generate pertemuan selesai", d.BackfillResponse{Created: created})
}

// POST /api/a/attendance-records/generate-all
// Sengaja TANPA transaksi: placeholder yang sudah sempat dibuat tetap ada
// saat batch berhenti di unique (student, lesson), dan angka di pesan error
// memang merujuk baris yang tersimpan.
func (ctl *BackfillController) GenerateAttendanceRecords(c *fiber.Ctx) error {
	created, err := svc.GenerateForAllLessons(ctl.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError,
			"generate berhenti setelah "+strconv.Itoa(created)+" placeholder: "+err.Error())
	}
	return helper.JsonOK(c, "Generate placeholder selesai", d.BackfillResponse{Created: created})
}
