// Package render projects an assembled account topology into textual
// output: indented plain-text reports and a PlantUML diagram document.
// Renderers are stateless; rendering the same topology twice produces
// byte-identical output.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/byunjuneseok/cloud-map/pkg/topology"
)

const (
	bannerWidth = 60
	ruleWidth   = 30
)

// Text renders indented plain-text reports of a topology.
type Text struct {
	IndentSize int
}

// NewText returns a Text renderer with the default indent of 2 spaces.
func NewText() *Text {
	return &Text{IndentSize: 2}
}

func (t *Text) indent(level int) string {
	return strings.Repeat(" ", level*t.IndentSize)
}

// printer writes formatted lines to a sink, keeping the first error and
// dropping everything after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// SubnetReport writes the subnet-level breakdown of one VPC: each subnet
// with its classification, CIDR, AZ, and any instances inside it.
func (t *Text) SubnetReport(topo *topology.NetworkTopology, w io.Writer) error {
	p := &printer{w: w}
	t.subnetReport(topo, p)
	return p.err
}

func (t *Text) subnetReport(topo *topology.NetworkTopology, p *printer) {
	p.printf("VPC: %s (%s)\n", topo.VPC.NameOrID(), topo.VPC.CIDR)

	for _, subnet := range topo.Subnets {
		subnetType := "Private"
		if subnet.MapPublicIPOnLaunch {
			subnetType = "Public"
		}
		p.printf("%s%s Subnet: %s\n", t.indent(1), subnetType, subnet.NameOrID())
		p.printf("%sCIDR: %s\n", t.indent(2), subnet.CIDR)
		p.printf("%sAZ: %s\n", t.indent(2), subnet.AZ)

		instances := topo.InstancesBySubnet(subnet.ID)
		if len(instances) > 0 {
			p.printf("%sEC2 Instances:\n", t.indent(2))
			for _, inst := range instances {
				p.printf("%s%s\n", t.indent(3), inst.NameOrID())
				p.printf("%sType: %s\n", t.indent(4), inst.InstanceType)
				p.printf("%sState: %s\n", t.indent(4), inst.State)
				p.printf("%sPrivate IP: %s\n", t.indent(4), inst.PrivateIP)
				if inst.PublicIP != "" {
					p.printf("%sPublic IP: %s\n", t.indent(4), inst.PublicIP)
				}
			}
		}
		p.printf("\n")
	}
}

// VPCReport writes the VPC-level summary: CIDR, state, gateways, and
// subnet/instance counts. Zero counts are suppressed.
func (t *Text) VPCReport(topo *topology.NetworkTopology, w io.Writer) error {
	p := &printer{w: w}
	t.vpcReport(topo, p)
	return p.err
}

func (t *Text) vpcReport(topo *topology.NetworkTopology, p *printer) {
	p.printf("VPC: %s\n", topo.VPC.NameOrID())
	p.printf("%sCIDR: %s\n", t.indent(1), topo.VPC.CIDR)
	p.printf("%sState: %s\n", t.indent(1), topo.VPC.State)
	p.printf("%sDefault: %v\n", t.indent(1), topo.VPC.IsDefault)

	if len(topo.InternetGateways) > 0 {
		p.printf("%sInternet Gateways:\n", t.indent(1))
		for _, igw := range topo.InternetGateways {
			p.printf("%s%s (%s)\n", t.indent(2), igw.ID, igw.State)
		}
	}

	if n := len(topo.PublicSubnets()); n > 0 {
		p.printf("%sPublic Subnets: %d\n", t.indent(1), n)
	}
	if n := len(topo.PrivateSubnets()); n > 0 {
		p.printf("%sPrivate Subnets: %d\n", t.indent(1), n)
	}
	if n := len(topo.Instances); n > 0 {
		p.printf("%sTotal EC2 Instances: %d\n", t.indent(1), n)
	}

	p.printf("\n")
}

// AccountReport writes the region header with account-wide totals, then a
// VPC-level summary per topology.
func (t *Text) AccountReport(account *topology.AccountTopology, w io.Writer) error {
	p := &printer{w: w}
	t.accountReport(account, p)
	return p.err
}

func (t *Text) accountReport(account *topology.AccountTopology, p *printer) {
	p.printf("AWS Account - Region: %s\n", account.Region)
	p.printf("Total VPCs: %d\n", len(account.VPCs))
	p.printf("Total Instances: %d\n", len(account.AllInstances()))
	p.printf("Total Subnets: %d\n", len(account.AllSubnets()))
	p.printf("\n")

	for i := range account.VPCs {
		t.vpcReport(&account.VPCs[i], p)
	}
}

// FullReport writes the banner, the account summary, then a detailed
// subnet-level breakdown of every VPC.
func (t *Text) FullReport(account *topology.AccountTopology, w io.Writer) error {
	p := &printer{w: w}

	p.printf("%s\n", strings.Repeat("=", bannerWidth))
	p.printf("AWS CLOUD INFRASTRUCTURE MAP\n")
	p.printf("%s\n\n", strings.Repeat("=", bannerWidth))

	t.accountReport(account, p)

	p.printf("DETAILED VPC BREAKDOWN:\n")
	p.printf("%s\n\n", strings.Repeat("-", ruleWidth))

	for i := range account.VPCs {
		t.subnetReport(&account.VPCs[i], p)
		p.printf("%s\n", strings.Repeat("-", ruleWidth))
	}

	return p.err
}
