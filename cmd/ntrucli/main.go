// Command ntrucli drives key generation, encryption, and decryption over
// the ntruencrypt package from the shell.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"os"

	"ntrugo/measureutil"
	"ntrugo/ntru/keys"
	"ntrugo/ntru/ternary"
	"ntrugo/ntruencrypt"
)

func usage() {
	fmt.Println(`usage: ntrucli <keygen|encrypt|decrypt|selftest> [options]

Subcommands:
  keygen    Generate an NTRUEncrypt keypair and write ./ntru_keys/{public,private}.json
              -preset <name>   parameter set (default: APR2011_439_FAST)

  encrypt   Encrypt a message under ./ntru_keys/public.json
              -preset <name>   parameter set (default: APR2011_439_FAST)
              -m <string>      message to encrypt (required)
            Output (stdout): base64 ciphertext

  decrypt   Decrypt a base64 ciphertext with ./ntru_keys/{public,private}.json
              -preset <name>   parameter set (default: APR2011_439_FAST)
              -c <string>      base64 ciphertext (required)
            Output (stdout): recovered plaintext

  selftest  Run keygen -> encrypt -> decrypt for every preset and report pass/fail

Set NTRUGO_MEASURE=1 to print encoded-size accounting after keygen/encrypt/decrypt.`)
	os.Exit(1)
}

const (
	publicKeyPath  = "ntru_keys/public.json"
	privateKeyPath = "ntru_keys/private.json"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "keygen":
		runKeygen(os.Args[2:])
	case "encrypt":
		runEncrypt(os.Args[2:])
	case "decrypt":
		runDecrypt(os.Args[2:])
	case "selftest":
		runSelftest(os.Args[2:])
	default:
		usage()
	}
	dumpMeasurements()
}

func presetFor(name string) (ntruencrypt.ParamSet, error) {
	all, err := ntruencrypt.AllPresets()
	if err != nil {
		return ntruencrypt.ParamSet{}, err
	}
	p, ok := all[name]
	if !ok {
		return ntruencrypt.ParamSet{}, fmt.Errorf("unknown preset %q", name)
	}
	return p, nil
}

func runKeygen(args []string) {
	fs := flag.NewFlagSet("keygen", flag.ExitOnError)
	preset := fs.String("preset", "APR2011_439_FAST", "parameter set name")
	fs.Parse(args)

	p, err := presetFor(*preset)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	kp, err := ntruencrypt.GenerateKeyPair(p, ternary.CryptoSource{})
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}
	if err := os.MkdirAll("ntru_keys", 0o755); err != nil {
		log.Fatalf("keygen: %v", err)
	}
	if err := keys.SavePublic(publicKeyPath, kp.Public); err != nil {
		log.Fatalf("keygen: saving public key: %v", err)
	}
	if err := keys.SavePrivate(privateKeyPath, kp.Private); err != nil {
		log.Fatalf("keygen: saving private key: %v", err)
	}
	fmt.Printf("wrote %s and %s under preset %s\n", publicKeyPath, privateKeyPath, *preset)
}

func runEncrypt(args []string) {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	preset := fs.String("preset", "APR2011_439_FAST", "parameter set name")
	msg := fs.String("m", "", "message to encrypt")
	fs.Parse(args)
	if *msg == "" {
		log.Fatal("encrypt: -m is required")
	}

	p, err := presetFor(*preset)
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}
	pub, err := keys.LoadPublic(publicKeyPath, p)
	if err != nil {
		log.Fatalf("encrypt: loading public key: %v", err)
	}
	ct, err := ntruencrypt.Encrypt(pub, []byte(*msg), ternary.CryptoSource{})
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}
	fmt.Println(base64.StdEncoding.EncodeToString(ct))
}

func runDecrypt(args []string) {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	preset := fs.String("preset", "APR2011_439_FAST", "parameter set name")
	ctB64 := fs.String("c", "", "base64 ciphertext")
	fs.Parse(args)
	if *ctB64 == "" {
		log.Fatal("decrypt: -c is required")
	}

	p, err := presetFor(*preset)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	pub, err := keys.LoadPublic(publicKeyPath, p)
	if err != nil {
		log.Fatalf("decrypt: loading public key: %v", err)
	}
	priv, err := keys.LoadPrivate(privateKeyPath, p)
	if err != nil {
		log.Fatalf("decrypt: loading private key: %v", err)
	}
	ct, err := base64.StdEncoding.DecodeString(*ctB64)
	if err != nil {
		log.Fatalf("decrypt: invalid base64 ciphertext: %v", err)
	}
	pt, err := ntruencrypt.Decrypt(ntruencrypt.KeyPair{Public: pub, Private: priv}, ct)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}
	fmt.Println(string(pt))
}

func runSelftest(args []string) {
	fs := flag.NewFlagSet("selftest", flag.ExitOnError)
	fs.Parse(args)

	all, err := ntruencrypt.AllPresets()
	if err != nil {
		log.Fatalf("selftest: %v", err)
	}
	failures := 0
	for name, p := range all {
		kp, err := ntruencrypt.GenerateKeyPair(p, ternary.CryptoSource{})
		if err != nil {
			fmt.Printf("%-20s FAIL keygen: %v\n", name, err)
			failures++
			continue
		}
		msg := []byte("ntrucli selftest")
		if len(msg) > p.MaxMsgLenBytes() {
			msg = msg[:p.MaxMsgLenBytes()]
		}
		ct, err := ntruencrypt.Encrypt(kp.Public, msg, ternary.CryptoSource{})
		if err != nil {
			fmt.Printf("%-20s FAIL encrypt: %v\n", name, err)
			failures++
			continue
		}
		pt, err := ntruencrypt.Decrypt(kp, ct)
		if err != nil || string(pt) != string(msg) {
			fmt.Printf("%-20s FAIL decrypt: %v\n", name, err)
			failures++
			continue
		}
		fmt.Printf("%-20s OK\n", name)
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func dumpMeasurements() {
	snap := measureutil.SnapshotAndReset()
	if len(snap) == 0 {
		return
	}
	for name, n := range snap {
		fmt.Fprintf(os.Stderr, "measure: %-40s %12d bytes\n", name, n)
	}
}
