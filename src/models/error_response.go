package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error ({"detail": "..."})
type ErrorResponse struct {
	Detail string `json:"detail" example:"Activity not found"`
}

// MessageResponse ผลลัพธ์ของการสมัคร/ถอนชื่อที่สำเร็จ
type MessageResponse struct {
	Message string `json:"message" example:"Signed up michael@mergington.edu for Chess Club"`
}
