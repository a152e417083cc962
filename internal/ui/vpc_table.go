package ui

import (
	"fmt"
	"strings"

	pkgtypes "github.com/byunjuneseok/cloud-map/pkg/types"
)

// VPC table column widths
var vpcColumnWidths = []int{24, 30, 18, 12, 10}

// Subnet table column widths
var subnetColumnWidths = []int{26, 30, 18, 14, 10, 8}

// PrintVPCTable prints VPCs in a styled box table
func PrintVPCTable(vpcs []pkgtypes.VPC) {
	headers := []string{"ID", "Name", "CIDR", "State", "Default"}

	var sb strings.Builder

	writeBorder(&sb, vpcColumnWidths, TopLeft, TopT, TopRight)
	writeHeaderRow(&sb, headers, vpcColumnWidths)
	writeBorder(&sb, vpcColumnWidths, LeftT, Cross, RightT)

	for _, vpc := range vpcs {
		sb.WriteString(BorderStyle.Render(Vertical))

		cell := " " + padRight(vpc.ID, vpcColumnWidths[0]) + " "
		sb.WriteString(IDStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(vpc.Name, vpcColumnWidths[1]) + " "
		sb.WriteString(NameStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(vpc.CIDR, vpcColumnWidths[2]) + " "
		sb.WriteString(IPStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString(formatResourceState(vpc.State, vpcColumnWidths[3]))
		sb.WriteString(BorderStyle.Render(Vertical))

		defaultStr := "No"
		if vpc.IsDefault {
			defaultStr = "Yes"
		}
		cell = " " + padRight(defaultStr, vpcColumnWidths[4]) + " "
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	writeBorder(&sb, vpcColumnWidths, BottomLeft, BottomT, BottomRight)

	fmt.Print(sb.String())
	fmt.Printf("  %d VPCs\n", len(vpcs))
}

// PrintSubnetTable prints subnets in a styled box table
func PrintSubnetTable(subnets []pkgtypes.Subnet) {
	headers := []string{"ID", "Name", "CIDR", "AZ", "State", "Public"}

	var sb strings.Builder

	writeBorder(&sb, subnetColumnWidths, TopLeft, TopT, TopRight)
	writeHeaderRow(&sb, headers, subnetColumnWidths)
	writeBorder(&sb, subnetColumnWidths, LeftT, Cross, RightT)

	for _, subnet := range subnets {
		sb.WriteString(BorderStyle.Render(Vertical))

		cell := " " + padRight(subnet.ID, subnetColumnWidths[0]) + " "
		sb.WriteString(IDStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(subnet.Name, subnetColumnWidths[1]) + " "
		sb.WriteString(NameStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(subnet.CIDR, subnetColumnWidths[2]) + " "
		sb.WriteString(IPStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		cell = " " + padRight(subnet.AZ, subnetColumnWidths[3]) + " "
		sb.WriteString(AZStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString(formatResourceState(subnet.State, subnetColumnWidths[4]))
		sb.WriteString(BorderStyle.Render(Vertical))

		publicStr := "No"
		if subnet.MapPublicIPOnLaunch {
			publicStr = "Yes"
		}
		cell = " " + padRight(publicStr, subnetColumnWidths[5]) + " "
		sb.WriteString(MutedStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))

		sb.WriteString("\n")
	}

	writeBorder(&sb, subnetColumnWidths, BottomLeft, BottomT, BottomRight)

	fmt.Print(sb.String())
	fmt.Printf("  %d subnets\n", len(subnets))
}

func writeBorder(sb *strings.Builder, widths []int, left, mid, right string) {
	sb.WriteString(BorderStyle.Render(left))
	for i, w := range widths {
		sb.WriteString(BorderStyle.Render(strings.Repeat(Horizontal, w+2)))
		if i < len(widths)-1 {
			sb.WriteString(BorderStyle.Render(mid))
		}
	}
	sb.WriteString(BorderStyle.Render(right))
	sb.WriteString("\n")
}

func writeHeaderRow(sb *strings.Builder, headers []string, widths []int) {
	sb.WriteString(BorderStyle.Render(Vertical))
	for i, h := range headers {
		cell := " " + padRight(h, widths[i]) + " "
		sb.WriteString(HeaderStyle.Render(cell))
		sb.WriteString(BorderStyle.Render(Vertical))
	}
	sb.WriteString("\n")
}

func formatResourceState(state string, width int) string {
	var indicator string
	var style = MutedStyle

	switch state {
	case "available", "running":
		indicator = "●"
		style = RunningStyle
	case "pending":
		indicator = "◐"
		style = PendingStyle
	default:
		indicator = "○"
		style = StoppedStyle
	}

	stateText := indicator + " " + state
	cell := " " + padRight(stateText, width) + " "
	return style.Render(cell)
}
