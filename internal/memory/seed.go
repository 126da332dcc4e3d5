package memory

import (
	"context"
	"time"

	"incubator-admin/internal/domain/device"
	"incubator-admin/internal/domain/order"
	"incubator-admin/internal/domain/product"
	"incubator-admin/internal/domain/template"
	"incubator-admin/internal/domain/ticket"
	"incubator-admin/internal/domain/user"
	"incubator-admin/internal/domain/warranty"
)

// Stores bundles every in-memory repository the service wires up.
type Stores struct {
	Devices    *DeviceRepository
	Products   *ProductRepository
	Orders     *OrderRepository
	Templates  *TemplateRepository
	Tickets    *TicketRepository
	Users      *UserRepository
	Warranties *WarrantyRepository
}

// NewStores creates empty repositories for every entity.
func NewStores() *Stores {
	return &Stores{
		Devices:    NewDeviceRepository(),
		Products:   NewProductRepository(),
		Orders:     NewOrderRepository(),
		Templates:  NewTemplateRepository(),
		Tickets:    NewTicketRepository(),
		Users:      NewUserRepository(),
		Warranties: NewWarrantyRepository(),
	}
}

// NewSeededStores creates repositories preloaded with the demo dataset the
// admin panel ships with.
func NewSeededStores() *Stores {
	s := NewStores()
	s.seed()
	return s
}

func (s *Stores) seed() {
	ctx := context.Background()
	now := time.Now()

	for _, p := range []product.Product{
		{ID: "P001", Name: "Máy ấp trứng 50", Capacity: "50 trứng", Stock: 45, Price: 3500000},
		{ID: "P002", Name: "Máy ấp trứng 100", Capacity: "100 trứng", Stock: 32, Price: 5200000},
		{ID: "P003", Name: "Máy ấp trứng 200", Capacity: "200 trứng", Stock: 18, Price: 8500000},
		{ID: "P004", Name: "Máy ấp trứng 500", Capacity: "500 trứng", Stock: 12, Price: 18000000},
		{ID: "P005", Name: "Máy ấp trứng 1000", Capacity: "1000 trứng", Stock: 5, Price: 32000000},
	} {
		s.Products.Add(&p)
	}

	for _, d := range []device.Device{
		{ID: "INC-2024-001", Name: "Máy ấp 100 trứng", Type: device.TypeOther, Owner: "Nguyễn Văn A", Status: device.StatusRunning, Temperature: 37.5, Humidity: 65, FanSpeed: 85, HeaterOn: true, MotorCycle: "2h"},
		{ID: "INC-2024-002", Name: "Máy ấp 200 trứng", Type: device.TypeOther, Owner: "Trần Thị B", Status: device.StatusWarning, Temperature: 38.2, Humidity: 58, FanSpeed: 92, HeaterOn: true, MotorCycle: "2h"},
		{ID: "INC-2024-003", Name: "Máy ấp 50 trứng", Type: device.TypeOther, Owner: "Lê Văn C", Status: device.StatusRunning, Temperature: 37.7, Humidity: 63, FanSpeed: 88, HeaterOn: true, MotorCycle: "2h"},
		{ID: "INC-2024-004", Name: "Máy ấp 500 trứng", Type: device.TypeOther, Owner: "Phạm Thị D", Status: device.StatusMaintenance, Temperature: 35.0, Humidity: 45, FanSpeed: 0, HeaterOn: false, MotorCycle: "Off"},
		{ID: "INC-2024-005", Name: "Máy ấp 100 trứng", Type: device.TypeOther, Owner: "Hoàng Văn E", Status: device.StatusRunning, Temperature: 37.4, Humidity: 64, FanSpeed: 86, HeaterOn: true, MotorCycle: "2h"},
		{ID: "SEN-2024-011", Name: "Cảm biến nhiệt dự phòng", Type: device.TypeSensor, Owner: "Kho Hà Nội", Status: device.StatusRunning, Temperature: 37.6, Humidity: 66, FanSpeed: 0, HeaterOn: false, MotorCycle: "-"},
	} {
		d.CreatedAt = now
		d.UpdatedAt = now
		_ = s.Devices.Create(ctx, &d)
	}

	for _, o := range []order.Order{
		{ID: "ORD-2024-001", CustomerName: "Nguyễn Văn A", Phone: "0912345678", ProductID: "P002", ProductName: "Máy ấp trứng 100", Quantity: 1, Status: order.StatusCompleted, Amount: 5200000, DepositAmount: 5200000, PaymentMethod: order.PaymentFull, Date: "2024-01-05", QRCode: "INC-2024-100"},
		{ID: "ORD-2024-002", CustomerName: "Trần Thị B", Phone: "0987654321", ProductID: "P003", ProductName: "Máy ấp trứng 200", Quantity: 1, Status: order.StatusShipping, Amount: 8500000, DepositAmount: 8500000, PaymentMethod: order.PaymentFull, Date: "2024-01-07", QRCode: "INC-2024-101"},
		{ID: "ORD-2024-003", CustomerName: "Lê Văn C", Phone: "0901234567", ProductID: "P001", ProductName: "Máy ấp trứng 50", Quantity: 1, Status: order.StatusDeposit, Amount: 3500000, DepositAmount: 1050000, PaymentMethod: order.PaymentDeposit, Date: "2024-01-08", QRCode: "INC-2024-102"},
		{ID: "ORD-2024-004", CustomerName: "Phạm Thị D", Phone: "0978901234", ProductID: "P004", ProductName: "Máy ấp trứng 500", Quantity: 1, Status: order.StatusPending, Amount: 18000000, DepositAmount: 5400000, PaymentMethod: order.PaymentDeposit, Date: "2024-01-09", QRCode: "INC-2024-103"},
	} {
		_ = s.Orders.Create(ctx, &o)
	}

	for _, t := range []template.Template{
		{ID: "T001", Name: "Trứng Gà", Icon: "🐔", Temperature: "37.5-38°C", Humidity: "55-65%", Duration: "21 ngày", TurnCycle: "2 giờ", Users: 156, Sessions: 324, SuccessRate: 92},
		{ID: "T002", Name: "Trứng Vịt", Icon: "🦆", Temperature: "37-37.5°C", Humidity: "58-62%", Duration: "28 ngày", TurnCycle: "2 giờ", Users: 89, Sessions: 178, SuccessRate: 88},
		{ID: "T003", Name: "Trứng Ngỗng", Icon: "🦢", Temperature: "37.5-38°C", Humidity: "60-65%", Duration: "30 ngày", TurnCycle: "3 giờ", Users: 42, Sessions: 95, SuccessRate: 85},
		{ID: "T004", Name: "Trứng Chim", Icon: "🐦", Temperature: "37-37.5°C", Humidity: "50-55%", Duration: "16 ngày", TurnCycle: "1.5 giờ", Users: 28, Sessions: 67, SuccessRate: 78},
		{ID: "T005", Name: "Trứng Đà Điểu", Icon: "🦤", Temperature: "36-36.5°C", Humidity: "25-30%", Duration: "42 ngày", TurnCycle: "4 giờ", Users: 15, Sessions: 32, SuccessRate: 80},
	} {
		_ = s.Templates.Create(ctx, &t)
	}

	for _, t := range []ticket.Ticket{
		{ID: "TKT-2024-001", DeviceID: "INC-2024-045", Customer: "Nguyễn Văn A", Issue: "Máy không gia nhiệt, nhiệt độ giảm xuống dưới 35°C", Status: ticket.StatusProcessing, Priority: ticket.PriorityHigh, CreatedAt: "2024-01-08 09:30", Assignee: "Kỹ thuật viên Minh", HasImage: true},
		{ID: "TKT-2024-002", DeviceID: "INC-2024-032", Customer: "Trần Thị B", Issue: "Motor đảo trứng không hoạt động", Status: ticket.StatusNew, Priority: ticket.PriorityHigh, CreatedAt: "2024-01-08 14:15", HasImage: true},
		{ID: "TKT-2024-003", DeviceID: "INC-2024-028", Customer: "Lê Văn C", Issue: "Màn hình LCD hiển thị không chính xác", Status: ticket.StatusDone, Priority: ticket.PriorityMedium, CreatedAt: "2024-01-07 16:20", Assignee: "Kỹ thuật viên Hùng", Solution: "Reset cài đặt và cập nhật firmware", HasImage: false},
		{ID: "TKT-2024-004", DeviceID: "INC-2024-019", Customer: "Phạm Thị D", Issue: "Quạt hoạt động không ổn định", Status: ticket.StatusProcessing, Priority: ticket.PriorityMedium, CreatedAt: "2024-01-08 10:45", Assignee: "Kỹ thuật viên Minh", HasImage: true},
		{ID: "TKT-2024-005", DeviceID: "INC-2024-012", Customer: "Hoàng Văn E", Issue: "Cảm biến độ ẩm báo lỗi", Status: ticket.StatusNew, Priority: ticket.PriorityLow, CreatedAt: "2024-01-08 15:30", HasImage: false},
	} {
		_ = s.Tickets.Create(ctx, &t)
	}

	for _, u := range []user.User{
		{ID: "U001", Name: "Nguyễn Văn A", Email: "nva@example.com", Phone: "0912345678", Role: user.RoleAdmin, Status: user.StatusActive, JoinDate: "2024-01-15", LastLogin: "2024-01-26"},
		{ID: "U002", Name: "Trần Thị B", Email: "ttb@example.com", Phone: "0987654321", Role: user.RoleStaff, Status: user.StatusActive, JoinDate: "2024-02-10", LastLogin: "2024-01-26"},
		{ID: "U003", Name: "Lê Văn C", Email: "lvc@example.com", Phone: "0901234567", Role: user.RoleStaff, Status: user.StatusActive, JoinDate: "2024-02-20", LastLogin: "2024-01-25"},
		{ID: "U004", Name: "Phạm Thị D", Email: "ptd@example.com", Phone: "0978901234", Role: user.RoleUser, Status: user.StatusActive, JoinDate: "2024-03-05", LastLogin: "2024-01-24"},
		{ID: "U005", Name: "Đặng Văn E", Email: "dve@example.com", Phone: "0945678901", Role: user.RoleUser, Status: user.StatusInactive, JoinDate: "2024-03-15", LastLogin: "2024-01-10"},
	} {
		_ = s.Users.Create(ctx, &u)
	}

	for _, w := range []warranty.Warranty{
		{
			ID: "WRT-2024-001", ProductID: "INC-2024-045", ProductName: "Máy Ấp Trứng 1000 Trứng",
			CustomerName: "Nguyễn Văn A", CustomerEmail: "nva@example.com", CustomerPhone: "0912345678",
			PurchaseDate: "2023-12-15", WarrantyEndDate: "2024-12-15", Status: warranty.StatusExpiring,
			ServiceCount: 1, MaxServiceAllowed: 3,
			Issues: []warranty.TechnicalIssue{
				{IssueID: "ISS-001", Date: "2024-01-08", Type: "Nhiệt độ", Description: "Máy không gia nhiệt đều", Status: warranty.IssueResolved, ResolutionDate: "2024-01-09", Notes: "Thay cảm biến nhiệt độ"},
			},
		},
		{
			ID: "WRT-2024-002", ProductID: "INC-2024-032", ProductName: "Máy Ấp Trứng 500 Trứng",
			CustomerName: "Trần Thị B", CustomerEmail: "ttb@example.com", CustomerPhone: "0987654321",
			PurchaseDate: "2024-01-05", WarrantyEndDate: "2025-01-05", Status: warranty.StatusActive,
			ServiceCount: 0, MaxServiceAllowed: 3,
		},
		{
			ID: "WRT-2024-003", ProductID: "INC-2024-087", ProductName: "Máy Ấp Trứng 2000 Trứng",
			CustomerName: "Phạm Văn C", CustomerEmail: "pvc@example.com", CustomerPhone: "0912987654",
			PurchaseDate: "2023-01-20", WarrantyEndDate: "2024-01-20", Status: warranty.StatusExpired,
			ServiceCount: 2, MaxServiceAllowed: 3,
			Issues: []warranty.TechnicalIssue{
				{IssueID: "ISS-002", Date: "2023-08-15", Type: "Motor", Description: "Motor đảo trứng không chạy", Status: warranty.IssueResolved, ResolutionDate: "2023-08-20", Notes: "Thay motor mới"},
				{IssueID: "ISS-003", Date: "2023-11-10", Type: "Điện", Description: "Cảnh báo quá điện áp", Status: warranty.IssueResolved, ResolutionDate: "2023-11-12", Notes: "Kiểm tra và hiệu chỉnh bảng điều khiển"},
			},
		},
		{
			ID: "WRT-2024-004", ProductID: "INC-2024-056", ProductName: "Máy Ấp Trứng 1500 Trứng",
			CustomerName: "Hoàng Thị D", CustomerEmail: "htd@example.com", CustomerPhone: "0945678901",
			PurchaseDate: "2023-06-10", WarrantyEndDate: "2025-06-10", Status: warranty.StatusActive,
			ServiceCount: 2, MaxServiceAllowed: 3,
			Issues: []warranty.TechnicalIssue{
				{IssueID: "ISS-004", Date: "2024-01-07", Type: "Độ ẩm", Description: "Cảm biến độ ẩm không chính xác", Status: warranty.IssueInProgress, Notes: "Đang chờ thay thế cảm biến"},
			},
		},
	} {
		_ = s.Warranties.Create(ctx, &w)
	}
}
