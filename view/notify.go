package view

type NotificationKind string

const (
	KindSuccess NotificationKind = "success"
	KindError   NotificationKind = "error"
)

// Notification คือข้อความแจ้งเตือนที่ผู้ใช้เห็น (เทียบเท่า Alert ในแอป)
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
}

// Notifier รับข้อความแจ้งเตือนจาก view ไปแสดงตามแพลตฟอร์ม
type Notifier interface {
	Notify(n Notification)
}

// Navigator ใช้ย้อนกลับไปหน้าก่อนหน้า
type Navigator interface {
	Back()
}

// Recorder เก็บข้อความแจ้งเตือนไว้ส่งกลับใน response
type Recorder struct {
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.items = append(r.items, n)
}

func (r *Recorder) Notifications() []Notification {
	if r.items == nil {
		return []Notification{}
	}
	return r.items
}

// Last คืนข้อความล่าสุด ถ้ายังไม่มีจะได้ค่าว่าง
func (r *Recorder) Last() Notification {
	if len(r.items) == 0 {
		return Notification{}
	}
	return r.items[len(r.items)-1]
}

// BackRecorder จำว่ามีการสั่งย้อนกลับหรือไม่
type BackRecorder struct {
	backs int
}

func (b *BackRecorder) Back() { b.backs++ }

func (b *BackRecorder) WentBack() bool { return b.backs > 0 }

const (
	titleSuccess = "สำเร็จ"
	titleError   = "ข้อผิดพลาด"
)

const (
	MsgRequiredFields    = "กรุณากรอกข้อมูลที่จำเป็นให้ครบถ้วน"
	MsgCreated           = "เพิ่มข้อมูลช่างเทคนิคเรียบร้อยแล้ว"
	MsgCreateFailed      = "ไม่สามารถเพิ่มข้อมูลได้ กรุณาลองใหม่"
	MsgMissingID         = "ไม่พบ ID ช่างเทคนิค กรุณาลองใหม่"
	MsgTechnicianMissing = "ไม่พบข้อมูลช่างเทคนิค"
	MsgFetchFailed       = "ไม่สามารถดึงข้อมูลได้ กรุณาลองใหม่"
	MsgUpdated           = "อัปเดตข้อมูลช่างเทคนิคเรียบร้อยแล้ว"
	MsgUpdateFailed      = "ไม่สามารถอัปเดตข้อมูลได้ กรุณาลองใหม่"
	MsgListFailed        = "ไม่สามารถดึงข้อมูลช่างเทคนิคได้ กรุณาลองใหม่ภายหลัง"
	MsgInvalidID         = "ID ช่างเทคนิคไม่ถูกต้อง"
	MsgDeleteNotFound    = "ไม่พบข้อมูลช่างเทคนิคนี้ในระบบ"
	MsgCheckFailed       = "ไม่สามารถตรวจสอบข้อมูลได้ กรุณาลองใหม่"
	MsgDeleted           = "ลบข้อมูลช่างเทคนิคเรียบร้อยแล้ว"
	MsgDeleteFailed      = "ไม่สามารถลบข้อมูลได้ กรุณาลองใหม่"
)

func success(message string) Notification {
	return Notification{Kind: KindSuccess, Title: titleSuccess, Message: message}
}

func failure(message string) Notification {
	return Notification{Kind: KindError, Title: titleError, Message: message}
}
