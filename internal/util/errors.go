package util

import "errors"

// User-facing messages are Thai; they surface verbatim in API error bodies.
var (
	ErrDepartmentNotFound     = errors.New("ไม่พบหน่วยงานนี้")
	ErrMalformedAnswer        = errors.New("ข้อมูลคำตอบไม่ถูกต้อง")
	ErrQuestionNotFound       = errors.New("ไม่พบคำถามนี้")
	ErrDepartmentHasResponses = errors.New("ไม่สามารถลบหน่วยงานที่มีข้อมูลการประเมินแล้ว")
	ErrQuestionHasAnswers     = errors.New("ไม่สามารถลบคำถามที่มีข้อมูลคำตอบแล้ว")
	ErrInvalidCredentials     = errors.New("ชื่อผู้ใช้หรือรหัสผ่านไม่ถูกต้อง")
	ErrUsernameTaken          = errors.New("ชื่อผู้ใช้นี้ถูกใช้แล้ว")
	ErrUserNotFound           = errors.New("ไม่พบผู้ใช้นี้")
	ErrCannotDeleteSelf       = errors.New("ไม่สามารถลบบัญชีผู้ใช้ของตนเองได้")
	ErrActionNotFound         = errors.New("ไม่พบรายการดำเนินการนี้")
	ErrActionNoFields         = errors.New("ต้องระบุข้อมูลที่ต้องการแก้ไขอย่างน้อยหนึ่งรายการ")
	ErrInvalidActionStatus    = errors.New("สถานะการดำเนินการไม่ถูกต้อง")
	ErrAnswerNotComment       = errors.New("คำตอบนี้ไม่ใช่ข้อคิดเห็นแบบข้อความ")
	ErrSurveyNotFound         = errors.New("ไม่พบแบบประเมินนี้")
)
