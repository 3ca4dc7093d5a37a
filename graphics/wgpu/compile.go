package wgpu

import (
	"fmt"

	"github.com/gogpu/naga"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// compileWGSL translates WGSL to the SPIR-V words the HAL consumes.
// Translation diagnostics surface as CompileError; they carry the naga
// message, the only log the front end produces.
func compileWGSL(source string) ([]uint32, error) {
	spirv, err := naga.Compile(source)
	if err != nil {
		return nil, &graphics.CompileError{Stage: "wgsl", Log: err.Error()}
	}
	if len(spirv)%4 != 0 {
		return nil, &graphics.CompileError{Stage: "wgsl", Log: fmt.Sprintf("truncated SPIR-V output (%d bytes)", len(spirv))}
	}

	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = uint32(spirv[i*4]) |
			uint32(spirv[i*4+1])<<8 |
			uint32(spirv[i*4+2])<<16 |
			uint32(spirv[i*4+3])<<24
	}
	return words, nil
}
