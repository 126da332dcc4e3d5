package order

import (
	"bytes"
	"context"
	"fmt"

	domainOrder "incubator-admin/internal/domain/order"
	"incubator-admin/internal/logger"
	appErrors "incubator-admin/pkg/errors"
	"incubator-admin/pkg/format"
	"incubator-admin/pkg/pagination"
	"incubator-admin/pkg/utils"

	"github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Service implements sales order use cases outside the creation wizard.
type Service struct {
	orderRepo domainOrder.Repository
}

// NewService creates a new order service.
func NewService(orderRepo domainOrder.Repository) *Service {
	return &Service{orderRepo: orderRepo}
}

func (s *Service) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(order), nil
}

func (s *Service) ListOrders(ctx context.Context, filter *OrderFilterRequest) (*OrderListResponse, error) {
	if filter == nil {
		filter = &OrderFilterRequest{}
	}
	filter.Page, filter.PageSize = pagination.Clamp(filter.Page, filter.PageSize, 20, 100)

	orders, total, err := s.orderRepo.List(ctx, ToDomainFilter(filter))
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = *ToOrderResponse(o)
	}

	totalPages := pagination.PageCount(total, filter.PageSize)
	from, to := pagination.Range(filter.Page, filter.PageSize, total)

	return &OrderListResponse{
		Orders:      responses,
		Total:       total,
		Page:        filter.Page,
		PageSize:    filter.PageSize,
		TotalPages:  totalPages,
		PageTokens:  pageTokens(filter.Page, totalPages),
		ShowingFrom: from,
		ShowingTo:   to,
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id string, req *UpdateOrderStatusRequest) (*OrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, domainOrder.OrderStatus(req.Status)); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	logger.Info("Order status updated",
		zap.String("order_id", id),
		zap.String("status", req.Status),
		zap.String("event", "order_status_updated"),
	)

	return ToOrderResponse(updated), nil
}

// QRCodePNG renders the incubator code attached to the order as a PNG, for
// printing on the delivery slip.
func (s *Service) QRCodePNG(ctx context.Context, id string) ([]byte, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(order.QRCode, qrcode.Medium, 256)
}

// ExportExcel writes the orders matching the filter to an xlsx workbook.
func (s *Service) ExportExcel(ctx context.Context, filter *OrderFilterRequest) ([]byte, error) {
	if filter == nil {
		filter = &OrderFilterRequest{}
	}

	// Export ignores pagination and takes the full filtered set.
	domainFilter := ToDomainFilter(filter)
	domainFilter.Page = 0
	domainFilter.PageSize = 0

	orders, _, err := s.orderRepo.List(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Orders"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headers := []string{
		"Mã đơn", "Khách hàng", "Điện thoại", "Sản phẩm", "Số lượng",
		"Trạng thái", "Tổng tiền", "Đã thanh toán", "Hình thức", "Ngày đặt", "Mã QR",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, o := range orders {
		values := []interface{}{
			o.ID, o.CustomerName, o.Phone, o.ProductName, o.Quantity,
			string(o.Status), format.FormatVND(o.Amount), format.FormatVND(o.DepositAmount),
			string(o.PaymentMethod), o.Date, o.QRCode,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	logger.Info("Orders exported",
		zap.Int("count", len(orders)),
		zap.String("event", "orders_exported"),
	)

	return buf.Bytes(), nil
}
