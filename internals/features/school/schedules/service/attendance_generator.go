// file: internals/features/school/schedules/service/attendance_generator.go
package service

import (
	"gorm.io/gorm"

	academicsModel "presensiku_backend/internals/features/school/academics/model"
	model "presensiku_backend/internals/features/school/schedules/model"
)

// GenerateForLesson membuat satu attendance record 'unregistered' per siswa
// yang terdaftar di course milik lesson. Satu-satunya pagar anti-duplikat
// adalah unique (student, lesson): pemanggilan kedua gagal di siswa pertama
// yang sudah punya record, dan sisa batch untuk call itu ikut batal
// (placeholder yang sudah sempat dibuat tetap ada — non-atomic di level ini).
func GenerateForLesson(tx *gorm.DB, lesson *model.LessonModel) (int, error) {
	var enrolments []academicsModel.EnrolmentModel
	if err := tx.Where("enrolment_course_id = ?", lesson.LessonCourseID).Find(&enrolments).Error; err != nil {
		return 0, err
	}

	created := 0
	for _, e := range enrolments {
		ar := model.AttendanceRecordModel{
			AttendanceRecordStudentID: e.EnrolmentStudentID,
			AttendanceRecordLessonID:  lesson.LessonID,
			AttendanceRecordStatus:    model.AttendanceUnregistered,
		}
		if err := tx.Create(&ar).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// GenerateForAllLessons: backfill sekali jalan untuk semua lesson yang ada.
// Duplicate-unsafe; bukan untuk jalur steady-state.
func GenerateForAllLessons(tx *gorm.DB) (int, error) {
	var lessons []model.LessonModel
	if err := tx.Find(&lessons).Error; err != nil {
		return 0, err
	}

	total := 0
	for i := range lessons {
		n, err := GenerateForLesson(tx, &lessons[i])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
