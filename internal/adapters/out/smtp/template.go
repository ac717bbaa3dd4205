package smtp

import (
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// renderTemplate wraps the body content in the shared HTML frame used by
// every outgoing email.
func renderTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2563eb; padding: 20px; text-align: center; color: white; }
			.header h2 { margin: 0; }
			.content { padding: 20px; color: #1e293b; line-height: 1.6; }
			.footer { background-color: #f8fafc; padding: 15px; text-align: center; font-size: 12px; color: #888; }
			table { width: 100%%; border-collapse: collapse; margin-top: 20px; }
			th, td { padding: 8px; border: 1px solid #ddd; }
			th { background-color: #f8fafc; text-align: left; }
			.total { text-align: right; margin-top: 20px; color: #2563eb; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h2>%s</h2>
			</div>
			<div class="content">
				%s
			</div>
			<div class="footer">
				&copy; 2026 ISDN Distribution Network. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// invoiceBody renders the line items and totals of a freshly placed order.
func invoiceBody(aggregate *order.Order) string {
	var items strings.Builder
	for _, line := range aggregate.Lines() {
		items.WriteString(fmt.Sprintf(`<tr>
			<td>%s</td>
			<td style="text-align: center;">%d</td>
			<td style="text-align: right;">Rs. %.2f</td>
			<td style="text-align: right;">Rs. %.2f</td>
		</tr>`, line.Name(), line.Quantity(), line.Price(), line.Subtotal()))
	}

	return fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thank you for your wholesale order <strong>#%s</strong>. We are processing it at our %s.</p>
		<table>
			<tr>
				<th>Product</th>
				<th style="text-align: center;">Qty</th>
				<th style="text-align: right;">Unit Price</th>
				<th style="text-align: right;">Total</th>
			</tr>
			%s
		</table>
		<h3 class="total">Total: Rs. %.2f</h3>
		<p style="font-size: 14px; color: #555;">
			<strong>Delivery Address:</strong><br/>
			%s
		</p>
	`,
		aggregate.Customer().Name(),
		aggregate.OrderID(),
		aggregate.OriginRDC(),
		items.String(),
		aggregate.Total(),
		aggregate.Customer().Address(),
	)
}

// restockBody renders the low-stock findings, scarcest first.
func restockBody(alerts []ports.RestockAlert) string {
	var rows strings.Builder
	for _, alert := range alerts {
		rows.WriteString(fmt.Sprintf(`<tr>
			<td>%s</td>
			<td>%s</td>
			<td style="text-align: right;">%d</td>
			<td>%s</td>
		</tr>`, alert.Location, alert.ProductID, alert.CurrentStock, alert.Message))
	}

	return fmt.Sprintf(`
		<p>The following ledger records have fallen to or below the restock threshold:</p>
		<table>
			<tr>
				<th>Center</th>
				<th>Product</th>
				<th style="text-align: right;">Quantity</th>
				<th>Message</th>
			</tr>
			%s
		</table>
		<p>Please schedule replenishment transfers.</p>
	`, rows.String())
}
