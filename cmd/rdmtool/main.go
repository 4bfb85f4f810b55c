// Package main implements rdmtool, a command-line encoder/decoder and
// responder simulator for the DMX512/RDM wire protocols.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mpowell90/dmx512-rdm-protocol/internal/config"
	"github.com/mpowell90/dmx512-rdm-protocol/internal/logging"
	"github.com/mpowell90/dmx512-rdm-protocol/internal/profile"
	"github.com/mpowell90/dmx512-rdm-protocol/rdm"
)

var (
	appName    = "rdmtool"
	appVersion = "dev" // injected at build time via -ldflags
)

func main() {
	if len(os.Args) < 2 {
		showHelp()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "encode":
		err = runEncode(args)
	case "decode":
		err = runDecode(args)
	case "simulate":
		err = runSimulate(args)
	case "-help", "--help", "help":
		showHelp()
		return
	case "-version", "--version", "version":
		showVersion()
		return
	default:
		fmt.Fprintf(os.Stderr, "rdmtool: unknown command %q\n", cmd)
		showHelp()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalln(err)
	}
}

func setupLogging(level string) {
	cfg, err := config.LoadWithOverrides(config.LoadOptions{LogLevel: level})
	if err != nil {
		logging.SetLevelFromString("info")
		return
	}
	logging.SetLevelFromString(cfg.Logging.Level)
}

// runEncode builds a single RDM request frame from flags and writes its
// hex encoding to stdout.
func runEncode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	cc := fs.String("cc", "get", "command class: get, set, or disc")
	pidName := fs.String("pid", "", "parameter name, e.g. IDENTIFY_DEVICE")
	dest := fs.String("dest", rdm.AllDevicesID.String(), "destination device uid, MMMM:DDDDDDDD")
	src := fs.String("src", "0000:00000000", "source device uid, MMMM:DDDDDDDD")
	subDevice := fs.Uint("subdevice", 0, "sub-device number")
	transaction := fs.Uint("transaction", 0, "transaction number")
	port := fs.Uint("port", 1, "port id (must be non-zero)")
	value := fs.String("value", "", "hex-encoded parameter payload")
	logLevel := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(*logLevel)

	if *pidName == "" {
		return fmt.Errorf("encode: -pid is required")
	}
	pid, ok := rdm.LookupPid(*pidName)
	if !ok {
		return fmt.Errorf("encode: unknown parameter name %q", *pidName)
	}

	commandClass, err := commandClassFor(*cc)
	if err != nil {
		return err
	}

	payload, err := hex.DecodeString(strings.TrimSpace(*value))
	if err != nil {
		return fmt.Errorf("encode: -value: %w", err)
	}

	destUID, err := rdm.ParseDeviceUID(*dest)
	if err != nil {
		return fmt.Errorf("encode: -dest: %w", err)
	}
	srcUID, err := rdm.ParseDeviceUID(*src)
	if err != nil {
		return fmt.Errorf("encode: -src: %w", err)
	}
	subDeviceId, err := rdm.SubDevice(uint16(*subDevice))
	if err != nil {
		return fmt.Errorf("encode: -subdevice: %w", err)
	}

	paramValue, err := rdm.BuildParameter(pid, commandClass, payload)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	param, ok := paramValue.(rdm.RequestParameter)
	if !ok {
		param = rdm.ManufacturerSpecific{Pid: pid, CommandClass: commandClass, Data: payload}
	}

	req := rdm.RdmRequest{
		Destination: destUID,
		Source:      srcUID,
		Transaction: byte(*transaction),
		PortId:      byte(*port),
		SubDevice:   subDeviceId,
		Parameter:   param,
	}

	encoded, err := req.Encode()
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	fmt.Println(hex.EncodeToString(encoded))
	return nil
}

// runDecode parses a hex-encoded frame and prints a human-readable
// rendering. It tries, in order: a discovery response (leading 0xFE or
// 0xAA), a request frame, and finally a standard response frame.
func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	hexInput := fs.String("hex", "", "hex-encoded frame bytes")
	logLevel := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(*logLevel)

	data, err := hex.DecodeString(strings.TrimSpace(*hexInput))
	if err != nil {
		return fmt.Errorf("decode: -hex: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("decode: -hex is required")
	}

	if data[0] == 0xFE || data[0] == 0xAA {
		resp, err := rdm.Decode(data)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		printResponse(resp)
		return nil
	}

	if req, err := rdm.DecodeRequest(data); err == nil {
		printRequest(req)
		return nil
	}

	resp, err := rdm.Decode(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	printResponse(resp)
	return nil
}

func printRequest(req *rdm.RdmRequest) {
	fmt.Printf("request  dest=%s src=%s transaction=%d port=%d subdevice=%d cc=%s pid=%s\n",
		req.Destination, req.Source, req.Transaction, req.PortId, req.SubDevice.Number(),
		req.Parameter.RequestCommandClass(), req.Parameter.PID())
	fmt.Printf("  parameter: %#v\n", req.Parameter)
}

func printResponse(resp rdm.RdmResponse) {
	switch r := resp.(type) {
	case *rdm.Frame:
		fmt.Printf("response dest=%s src=%s transaction=%d type=%s subdevice=%d cc=%s pid=%s\n",
			r.Destination, r.Source, r.Transaction, r.ResponseType, r.SubDevice.Number(), r.CommandClass, r.PID)
		fmt.Printf("  data: %#v\n", r.Data)
	case *rdm.DiscoveryUniqueBranchFrame:
		fmt.Printf("discovery euid=%s checksum=0x%04X\n", r.EUID, r.Checksum)
	default:
		fmt.Printf("%#v\n", resp)
	}
}

// runSimulate decodes an incoming request against a directory of device
// profiles and, if the destination matches a loaded profile, prints the
// hex-encoded response frame a simulated responder would send: an ACK for
// the PIDs simulateAnswer handles, a NACK frame for every other PID.
func runSimulate(args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	profileDir := fs.String("profile-dir", "./profiles", "directory of YAML device profiles")
	hexInput := fs.String("hex", "", "hex-encoded incoming request frame")
	logLevel := fs.String("log-level", "info", "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(*logLevel)

	data, err := hex.DecodeString(strings.TrimSpace(*hexInput))
	if err != nil {
		return fmt.Errorf("simulate: -hex: %w", err)
	}

	req, err := rdm.DecodeRequest(data)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	profiles, err := profile.LoadDir(*profileDir)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	p, ok := profiles[req.Destination.String()]
	if !ok {
		return fmt.Errorf("simulate: no profile loaded for %s", req.Destination)
	}

	ackValue, responseType, err := simulateAnswer(p, req)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	resp := rdm.Frame{
		Destination:  req.Source,
		Source:       req.Destination,
		Transaction:  req.Transaction,
		ResponseType: responseType,
		SubDevice:    req.SubDevice,
		CommandClass: responseClassFor(req.Parameter.RequestCommandClass()),
		PID:          req.Parameter.PID(),
		Data:         ackValue,
	}

	encoded, err := resp.Encode()
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	logging.Info("answered %s from %s", req.Parameter.PID(), req.Destination)
	fmt.Println(hex.EncodeToString(encoded))
	return nil
}

// simulateAnswer produces the response data for req against profile p.
// Only a handful of read-only PIDs are simulated; everything else NACKs
// with UnsupportedCommandClass.
func simulateAnswer(p *profile.Profile, req *rdm.RdmRequest) (rdm.ResponseData, rdm.ResponseType, error) {
	switch req.Parameter.PID().Code() {
	case rdm.PidDeviceInfo.Code():
		return rdm.AckData{Value: p.DeviceInfo()}, rdm.ResponseTypeAck, nil
	case rdm.PidIdentifyDevice.Code():
		return rdm.AckData{Value: rdm.GetIdentifyDeviceResponse{Value: false}}, rdm.ResponseTypeAck, nil
	case rdm.PidDmxPersonalityDescription.Code():
		getReq, ok := req.Parameter.(rdm.GetDmxPersonalityDescriptionRequest)
		if !ok {
			return nil, 0, fmt.Errorf("unexpected parameter type %T", req.Parameter)
		}
		resp, err := p.Personality(getReq.Personality)
		if err != nil {
			return rdm.NackData{Reason: rdm.NackReasonDataOutOfRange}, rdm.ResponseTypeNack, nil
		}
		return rdm.AckData{Value: resp}, rdm.ResponseTypeAck, nil
	case rdm.PidSensorDefinition.Code():
		getReq, ok := req.Parameter.(rdm.GetSensorDefinitionRequest)
		if !ok {
			return nil, 0, fmt.Errorf("unexpected parameter type %T", req.Parameter)
		}
		resp, err := p.Sensor(getReq.SensorNumber)
		if err != nil {
			return rdm.NackData{Reason: rdm.NackReasonDataOutOfRange}, rdm.ResponseTypeNack, nil
		}
		return rdm.AckData{Value: resp}, rdm.ResponseTypeAck, nil
	default:
		return rdm.NackData{Reason: rdm.NackReasonUnsupportedCommandClass}, rdm.ResponseTypeNack, nil
	}
}

func responseClassFor(cc rdm.CommandClass) rdm.CommandClass {
	switch cc {
	case rdm.GetCommand:
		return rdm.GetCommandResponse
	case rdm.SetCommand:
		return rdm.SetCommandResponse
	default:
		return rdm.DiscoveryCommandResponse
	}
}

func commandClassFor(name string) (rdm.CommandClass, error) {
	switch strings.ToLower(name) {
	case "get":
		return rdm.GetCommand, nil
	case "set":
		return rdm.SetCommand, nil
	case "disc", "discovery":
		return rdm.DiscoveryCommand, nil
	default:
		return 0, fmt.Errorf("unknown command class %q", name)
	}
}

func showHelp() {
	fmt.Println(appName)
	fmt.Println("USAGE: rdmtool <command> [options]")
	fmt.Println("COMMANDS:")
	fmt.Println("  encode    build an RDM request frame and print it as hex")
	fmt.Println("  decode    parse a hex-encoded frame and print its fields")
	fmt.Println("  simulate  answer a hex-encoded request against a device profile")
	fmt.Println("  version   show version information")
	fmt.Println("  help      show this help message")
	fmt.Println("EXAMPLES:")
	fmt.Println("  rdmtool encode -pid IDENTIFY_DEVICE -dest 4859:00000001 -src 0000:00000000")
	fmt.Println("  rdmtool decode -hex ccXXXXXXXXXXXXXXXX...")
	fmt.Println("  rdmtool simulate -profile-dir ./profiles -hex ccXXXXXXXXXXXXXXXX...")
}

func showVersion() {
	fmt.Printf("%s %s\n", appName, appVersion)
}
