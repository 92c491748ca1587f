package main

import (
	"image"
	"log"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"orbitals/scene"
)

// lightDirection points from the key light into the scene.
var lightDirection = mgl32.Vec3{-0.4, -0.6, -1}.Normalize()

var environment = mgl32.Vec3{0.35, 0.35, 0.38}

func buildShader(vertexShaderSource, fragmentShaderSource string) uint32 {
	vertex := gl.CreateShader(gl.VERTEX_SHADER)
	cvs, freeVertex := gl.Strs(vertexShaderSource)
	gl.ShaderSource(vertex, 1, cvs, nil)
	freeVertex()
	gl.CompileShader(vertex)
	checkShaderCompileErrors(vertex, "VERTEX")

	fragment := gl.CreateShader(gl.FRAGMENT_SHADER)
	cfs, freeFragment := gl.Strs(fragmentShaderSource)
	gl.ShaderSource(fragment, 1, cfs, nil)
	freeFragment()
	gl.CompileShader(fragment)
	checkShaderCompileErrors(fragment, "FRAGMENT")

	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)
	checkProgramLinkErrors(program)

	gl.DeleteShader(vertex)
	gl.DeleteShader(fragment)

	return program
}

func checkShaderCompileErrors(shader uint32, shaderType string) {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logMsg))
		log.Printf("[%s SHADER COMPILE ERROR]:\n%s\n", shaderType, strings.TrimSpace(logMsg))
	}
}

func checkProgramLinkErrors(program uint32) {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logMsg := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logMsg))
		log.Printf("[PROGRAM LINK ERROR]:\n%s\n", strings.TrimSpace(logMsg))
	}
}

type gpuMesh struct {
	vao     uint32
	buffers [5]uint32
	count   int32
}

// renderer draws a scene into an offscreen framebuffer at the render
// resolution and blits it to the window. Meshes and textures are uploaded
// the first time they are drawn, so assets that finish loading late need
// no special handling.
type renderer struct {
	program     uint32
	blitProgram uint32
	uniforms    map[string]int32

	meshes   map[*scene.Mesh]*gpuMesh
	textures map[*image.RGBA]uint32

	width, height int32
	fbo           uint32
	colorTex      uint32
	depthRBO      uint32
	blitVAO       uint32
}

func newRenderer(vertexShaderSource, fragmentShaderSource string, width, height int) *renderer {
	r := &renderer{
		program:     buildShader(vertexShaderSource, fragmentShaderSource),
		blitProgram: buildShader(blitVertexShader+"\x00", blitFragmentShader+"\x00"),
		uniforms:    map[string]int32{},
		meshes:      map[*scene.Mesh]*gpuMesh{},
		textures:    map[*image.RGBA]uint32{},
		width:       int32(width),
		height:      int32(height),
	}

	quadVertices := []float32{-1, -1, 1, -1, -1, 1, 1, 1}
	texCoords := []float32{0, 0, 1, 0, 0, 1, 1, 1}

	var blitVBO, blitTBO uint32
	gl.GenVertexArrays(1, &r.blitVAO)
	gl.BindVertexArray(r.blitVAO)

	gl.GenBuffers(1, &blitVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, blitVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &blitTBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, blitTBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(texCoords)*4, gl.Ptr(texCoords), gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 0, nil)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &r.colorTex)
	gl.BindTexture(gl.TEXTURE_2D, r.colorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, r.width, r.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.GenRenderbuffers(1, &r.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, r.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, r.width, r.height)

	gl.GenFramebuffers(1, &r.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, r.colorTex, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, r.depthRBO)
	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		log.Printf("[FRAMEBUFFER ERROR]: status 0x%x\n", status)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	return r
}

func (r *renderer) uniform(name string) int32 {
	loc, ok := r.uniforms[name]
	if !ok {
		loc = gl.GetUniformLocation(r.program, gl.Str(name+"\x00"))
		r.uniforms[name] = loc
	}
	return loc
}

func (r *renderer) render(s *scene.Scene) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, r.fbo)
	gl.Viewport(0, 0, r.width, r.height)
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(s.Background[0], s.Background[1], s.Background[2], 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)

	viewProjection := s.Camera.ViewProjection()
	gl.UniformMatrix4fv(r.uniform("uViewProjection"), 1, false, &viewProjection[0])
	camera := s.Camera.Position
	gl.Uniform3f(r.uniform("uCameraPosition"), camera[0], camera[1], camera[2])
	gl.Uniform3f(r.uniform("uLightDirection"), lightDirection[0], lightDirection[1], lightDirection[2])
	gl.Uniform3f(r.uniform("uEnvironment"), environment[0], environment[1], environment[2])
	gl.Uniform1i(r.uniform("uTexture"), 0)

	s.Root.Walk(mgl32.Ident4(), func(n *scene.Node, world mgl32.Mat4) {
		if n.Mesh != nil && len(n.Mesh.Indices) > 0 {
			r.drawNode(n, world)
		}
	})
	gl.BindVertexArray(0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

func (r *renderer) drawNode(n *scene.Node, world mgl32.Mat4) {
	m, ok := r.meshes[n.Mesh]
	if !ok {
		m = uploadMesh(n.Mesh)
		r.meshes[n.Mesh] = m
	}

	normalMatrix := world.Mat3().Inv().Transpose()
	gl.UniformMatrix4fv(r.uniform("uModel"), 1, false, &world[0])
	gl.UniformMatrix3fv(r.uniform("uNormalMatrix"), 1, false, &normalMatrix[0])

	mat := n.Material
	gl.Uniform3f(r.uniform("uColor"), mat.Color[0], mat.Color[1], mat.Color[2])
	gl.Uniform1f(r.uniform("uRoughness"), mat.Roughness)
	gl.Uniform1f(r.uniform("uMetalness"), mat.Metalness)
	gl.Uniform1f(r.uniform("uReflectivity"), mat.Reflectivity)
	gl.Uniform1f(r.uniform("uClearcoat"), mat.Clearcoat)
	gl.Uniform1i(r.uniform("uVertexColors"), glBool(mat.VertexColors))

	if mat.Texture != nil {
		tex, ok := r.textures[mat.Texture]
		if !ok {
			tex = uploadTexture(mat.Texture)
			r.textures[mat.Texture] = tex
		}
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
	}
	gl.Uniform1i(r.uniform("uTextured"), glBool(mat.Texture != nil))

	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
}

// blit stretches the offscreen render over a window framebuffer of the
// given size.
func (r *renderer) blit(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Disable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(r.blitProgram)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.colorTex)
	gl.BindVertexArray(r.blitVAO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

func uploadMesh(m *scene.Mesh) *gpuMesh {
	n := m.VertexCount()
	colors := m.Colors
	if len(colors) == 0 {
		colors = make([]float32, n*3)
		for i := range colors {
			colors[i] = 1
		}
	}
	uvs := m.UVs
	if len(uvs) == 0 {
		uvs = make([]float32, n*2)
	}
	attributes := []struct {
		data []float32
		size int32
	}{
		{m.Positions, 3},
		{m.Normals, 3},
		{colors, 3},
		{uvs, 2},
	}

	g := &gpuMesh{count: int32(len(m.Indices))}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(int32(len(g.buffers)), &g.buffers[0])
	for i, a := range attributes {
		gl.BindBuffer(gl.ARRAY_BUFFER, g.buffers[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(a.data)*4, gl.Ptr(a.data), gl.STATIC_DRAW)
		gl.VertexAttribPointer(uint32(i), a.size, gl.FLOAT, false, 0, nil)
		gl.EnableVertexAttribArray(uint32(i))
	}
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.buffers[len(attributes)])
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
	return g
}

func uploadTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	return tex
}

func glBool(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
